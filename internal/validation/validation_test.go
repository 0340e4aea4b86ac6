// internal/validation/validation_test.go
package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type tweetPayload struct {
	Username string `json:"username" validate:"required"`
	Tweet    string `json:"tweet" validate:"required,max=280"`
}

type userPayload struct {
	Username string `json:"username" validate:"required"`
	Avatar   string `json:"avatar"`
}

func TestStruct_ValidPayload(t *testing.T) {
	messages := Struct(tweetPayload{Username: "ana", Tweet: "hi"})
	assert.Nil(t, messages)
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	messages := Struct(tweetPayload{})

	assert.Len(t, messages, 2)
	assert.Contains(t, messages, "username is required")
	assert.Contains(t, messages, "tweet is required")
}

func TestStruct_TweetLengthBound(t *testing.T) {
	atLimit := tweetPayload{Username: "ana", Tweet: strings.Repeat("x", 280)}
	assert.Nil(t, Struct(atLimit))

	overLimit := tweetPayload{Username: "ana", Tweet: strings.Repeat("x", 281)}
	messages := Struct(overLimit)
	assert.Equal(t, []string{"tweet must not exceed 280 characters"}, messages)
}

func TestStruct_AvatarIsOptional(t *testing.T) {
	assert.Nil(t, Struct(userPayload{Username: "ana"}))
	assert.Nil(t, Struct(userPayload{Username: "ana", Avatar: "https://example.com/a.png"}))
}

func TestTweetID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"lowercase hex", "507f1f77bcf86cd799439011", true},
		{"uppercase hex", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd79943901", false},
		{"too long", "507f1f77bcf86cd7994390111", false},
		{"non-hex character", "507f1f77bcf86cd79943901g", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidTweetID(tc.id))
			if tc.valid {
				assert.Nil(t, TweetID(tc.id))
			} else {
				assert.Equal(t, []string{"id must be exactly 24 hexadecimal characters"}, TweetID(tc.id))
			}
		})
	}
}
