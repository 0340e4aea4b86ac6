// internal/service/social_service.go
package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tweetline/internal/domain"
	"tweetline/internal/repository"
	"tweetline/internal/util"
)

// TimelineItem is a tweet annotated with its author's current avatar,
// resolved at read time.
type TimelineItem struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
	Avatar   string             `json:"avatar"`
	Tweet    string             `json:"tweet"`
}

// SocialService defines the interface for the posting business logic.
type SocialService interface {
	SignUp(ctx context.Context, username, avatar string) (*domain.User, error)
	PostTweet(ctx context.Context, username, text string) (*domain.Tweet, error)
	UserTimeline(ctx context.Context, username string) ([]TimelineItem, error)
	Timeline(ctx context.Context) ([]TimelineItem, error)
	EditTweet(ctx context.Context, id primitive.ObjectID, text string) error
	RemoveTweet(ctx context.Context, id primitive.ObjectID) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// socialService implements the SocialService interface.
type socialService struct {
	userRepo  repository.UserRepository
	tweetRepo repository.TweetRepository
}

// NewSocialService creates a new instance of SocialService.
func NewSocialService(userRepo repository.UserRepository, tweetRepo repository.TweetRepository) SocialService {
	return &socialService{
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
	}
}

// SignUp registers a new user. The handle is pre-checked for uniqueness;
// the store's unique index backstops the race between check and insert.
func (s *socialService) SignUp(ctx context.Context, username, avatar string) (*domain.User, error) {
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, util.ErrDuplicateEntry
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("sign-up: failed to check username '%s': %w", username, err)
	}

	user := domain.NewUser(username, avatar)
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("sign-up: failed to create user '%s': %w", username, err)
	}
	return user, nil
}

// PostTweet creates a tweet for a known user. The author must exist at
// creation time; later edits and deletes never re-verify ownership.
func (s *socialService) PostTweet(ctx context.Context, username, text string) (*domain.Tweet, error) {
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("post: failed to look up user '%s': %w", username, err)
	}

	tweet := domain.NewTweet(username, text)
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, fmt.Errorf("post: failed to create tweet: %w", err)
	}
	return tweet, nil
}

// UserTimeline lists one user's tweets, newest first, each annotated with
// that user's avatar. An unknown user is an error on this path.
func (s *socialService) UserTimeline(ctx context.Context, username string) ([]TimelineItem, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("timeline: failed to look up user '%s': %w", username, err)
	}

	tweets, err := s.tweetRepo.ListTweetsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("timeline: failed to list tweets for '%s': %w", username, err)
	}

	items := make([]TimelineItem, 0, len(tweets))
	for _, t := range tweets {
		items = append(items, TimelineItem{
			ID:       t.ID,
			Username: t.Username,
			Avatar:   user.Avatar,
			Tweet:    t.Text,
		})
	}
	return items, nil
}

// Timeline lists all tweets, newest first. Each tweet's avatar is resolved
// independently per tweet; a tweet whose author no longer exists gets an
// empty avatar, never an error.
func (s *socialService) Timeline(ctx context.Context) ([]TimelineItem, error) {
	tweets, err := s.tweetRepo.ListTweets(ctx)
	if err != nil {
		return nil, fmt.Errorf("timeline: failed to list tweets: %w", err)
	}

	items := make([]TimelineItem, 0, len(tweets))
	for _, t := range tweets {
		avatar := ""
		user, err := s.userRepo.GetUserByUsername(ctx, t.Username)
		switch {
		case err == nil:
			avatar = user.Avatar
		case util.IsError(err, util.ErrNotFound):
			// Author deleted or never registered; keep the empty avatar.
		default:
			return nil, fmt.Errorf("timeline: failed to look up user '%s': %w", t.Username, err)
		}

		items = append(items, TimelineItem{
			ID:       t.ID,
			Username: t.Username,
			Avatar:   avatar,
			Tweet:    t.Text,
		})
	}
	return items, nil
}

// EditTweet replaces a tweet's text by id.
func (s *socialService) EditTweet(ctx context.Context, id primitive.ObjectID, text string) error {
	if err := s.tweetRepo.UpdateTweetText(ctx, id, text); err != nil {
		if util.IsError(err, util.ErrTweetNotFound) {
			return util.ErrTweetNotFound
		}
		return fmt.Errorf("edit: failed to update tweet %s: %w", id.Hex(), err)
	}
	return nil
}

// RemoveTweet deletes a tweet by id.
func (s *socialService) RemoveTweet(ctx context.Context, id primitive.ObjectID) error {
	if err := s.tweetRepo.DeleteTweet(ctx, id); err != nil {
		if util.IsError(err, util.ErrTweetNotFound) {
			return util.ErrTweetNotFound
		}
		return fmt.Errorf("remove: failed to delete tweet %s: %w", id.Hex(), err)
	}
	return nil
}

// ListUsers lists all users, newest first.
func (s *socialService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users: failed to list users: %w", err)
	}
	return users, nil
}
