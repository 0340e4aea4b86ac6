// internal/domain/tweet.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet represents a single post. The author is referenced by username
// value only; there is no stored relation and no cascading delete, so a
// tweet may outlive its author.
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`   // Assigned by the store on insert
	Username  string             `bson:"username" json:"username"`   // Author handle at creation time
	Text      string             `bson:"tweet" json:"tweet"`         // Post body
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"` // Timestamp of creation
}

// NewTweet creates a new Tweet instance.
func NewTweet(username, text string) *Tweet {
	return &Tweet{
		Username:  username,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
