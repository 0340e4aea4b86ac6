// internal/repository/tweet_repo.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tweetline/internal/domain"
)

// TweetRepository defines the interface for tweet data operations.
// All listing methods order by creation time descending.
type TweetRepository interface {
	// CreateTweet adds a new tweet to the store. The store-assigned
	// identifier is written back into tweet.ID on success.
	CreateTweet(ctx context.Context, tweet *domain.Tweet) error
	// ListTweetsByUsername retrieves one author's tweets, newest first.
	ListTweetsByUsername(ctx context.Context, username string) ([]domain.Tweet, error)
	// ListTweets retrieves all tweets, newest first.
	ListTweets(ctx context.Context) ([]domain.Tweet, error)
	// UpdateTweetText replaces the text of the tweet with the given id.
	UpdateTweetText(ctx context.Context, id primitive.ObjectID, text string) error
	// DeleteTweet removes the tweet with the given id.
	DeleteTweet(ctx context.Context, id primitive.ObjectID) error
}
