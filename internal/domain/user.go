// internal/domain/user.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account, identified by its unique handle.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`   // Assigned by the store on insert
	Username  string             `bson:"username" json:"username"`   // Unique handle
	Avatar    string             `bson:"avatar" json:"avatar"`       // Avatar URL, may be empty
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"` // Timestamp of creation, immutable
}

// NewUser creates a new User instance.
func NewUser(username, avatar string) *User {
	return &User{
		Username:  username,
		Avatar:    avatar,
		CreatedAt: time.Now().UTC(),
	}
}
