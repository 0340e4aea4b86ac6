// internal/repository/user_repo.go
package repository

import (
	"context"

	"tweetline/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the store. The store-assigned
	// identifier is written back into user.ID on success.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByUsername retrieves a user by their handle.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListUsers retrieves all users ordered by creation time descending.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
