// internal/repository/mongodb/tweet_mongo.go
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tweetline/internal/domain"
	"tweetline/internal/repository"
	"tweetline/internal/util"
	"tweetline/pkg/db"
)

// TweetRepository implements repository.TweetRepository for MongoDB.
type TweetRepository struct {
	coll *mongo.Collection
}

// NewTweetRepository creates a new TweetRepository over the tweets collection.
func NewTweetRepository(database *mongo.Database) repository.TweetRepository {
	return &TweetRepository{coll: database.Collection(db.TweetsCollection)}
}

// CreateTweet inserts a new tweet and writes the store-assigned id back.
func (r *TweetRepository) CreateTweet(ctx context.Context, tweet *domain.Tweet) error {
	res, err := r.coll.InsertOne(ctx, tweet)
	if err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tweet.ID = oid
	}
	return nil
}

// ListTweetsByUsername retrieves one author's tweets, newest first.
func (r *TweetRepository) ListTweetsByUsername(ctx context.Context, username string) ([]domain.Tweet, error) {
	return r.find(ctx, bson.M{"username": username})
}

// ListTweets retrieves all tweets, newest first.
func (r *TweetRepository) ListTweets(ctx context.Context) ([]domain.Tweet, error) {
	return r.find(ctx, bson.M{})
}

func (r *TweetRepository) find(ctx context.Context, filter bson.M) ([]domain.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer cursor.Close(ctx)

	tweets := []domain.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

// UpdateTweetText replaces the text of the tweet with the given id. Only the
// tweet field changes; author and createdAt are immutable.
func (r *TweetRepository) UpdateTweetText(ctx context.Context, id primitive.ObjectID, text string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"tweet": text}})
	if err != nil {
		return fmt.Errorf("failed to update tweet %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return util.ErrTweetNotFound
	}
	return nil
}

// DeleteTweet removes the tweet with the given id.
func (r *TweetRepository) DeleteTweet(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tweet %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return util.ErrTweetNotFound
	}
	return nil
}
