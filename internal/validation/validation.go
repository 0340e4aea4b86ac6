// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields
// or length bounds) defined in struct tags and extracts validation errors
// into a format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields under their wire names rather than Go names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its validator tags and returns the full list
// of human-readable violation messages. Validation is exhaustive: every
// violation is reported, not just the first. A nil return means v is valid.
func Struct(v any) []string {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// A non-struct or nil payload reached the validator.
		return []string{"request payload is invalid"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, message(fieldErr))
	}
	return messages
}

// message converts a single field error into a user-friendly sentence.
func message(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, err.Param())
	default:
		if err.Param() != "" {
			return fmt.Sprintf("%s failed on %s:%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s failed on %s", field, err.Tag())
	}
}

// tweetIDRegex matches the store-assigned record identifier format:
// exactly 24 hexadecimal characters.
var tweetIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidTweetID checks whether a string is a well-formed record identifier.
//
// Note: this validates format only; a well-formed id may still not exist.
func IsValidTweetID(id string) bool {
	return tweetIDRegex.MatchString(id)
}

// TweetID validates a path identifier and returns the violation messages,
// mirroring Struct's contract. A nil return means the id is well-formed.
func TweetID(id string) []string {
	if IsValidTweetID(id) {
		return nil
	}
	return []string{"id must be exactly 24 hexadecimal characters"}
}
