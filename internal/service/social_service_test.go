// internal/service/social_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tweetline/internal/domain"
	"tweetline/internal/util"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockTweetRepository is a mock implementation of repository.TweetRepository.
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) CreateTweet(ctx context.Context, tweet *domain.Tweet) error {
	args := m.Called(ctx, tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) ListTweetsByUsername(ctx context.Context, username string) ([]domain.Tweet, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListTweets(ctx context.Context) ([]domain.Tweet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateTweetText(ctx context.Context, id primitive.ObjectID, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *MockTweetRepository) DeleteTweet(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (SocialService, *MockUserRepository, *MockTweetRepository) {
	userRepo := new(MockUserRepository)
	tweetRepo := new(MockTweetRepository)
	return NewSocialService(userRepo, tweetRepo), userRepo, tweetRepo
}

func TestSignUp_FreshUsername(t *testing.T) {
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ana").Return(nil, util.ErrNotFound)
	userRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "ana" && u.Avatar == "https://example.com/a.png"
	})).Return(nil)

	user, err := svc.SignUp(ctx, "ana", "https://example.com/a.png")

	assert.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
	userRepo.AssertExpectations(t)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	existing := domain.NewUser("ana", "")
	userRepo.On("GetUserByUsername", ctx, "ana").Return(existing, nil)

	user, err := svc.SignUp(ctx, "ana", "")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, util.ErrDuplicateEntry)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestSignUp_RaceLostToConcurrentInsert(t *testing.T) {
	// The pre-check passes but the unique index rejects the insert.
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ana").Return(nil, util.ErrNotFound)
	userRepo.On("CreateUser", ctx, mock.Anything).Return(util.ErrDuplicateEntry)

	_, err := svc.SignUp(ctx, "ana", "")

	assert.ErrorIs(t, err, util.ErrDuplicateEntry)
}

func TestSignUp_LookupStorageError(t *testing.T) {
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ana").Return(nil, errors.New("connection reset"))

	_, err := svc.SignUp(ctx, "ana", "")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, util.ErrDuplicateEntry)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestPostTweet_KnownUser(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ana").Return(domain.NewUser("ana", ""), nil)
	tweetRepo.On("CreateTweet", ctx, mock.MatchedBy(func(tw *domain.Tweet) bool {
		return tw.Username == "ana" && tw.Text == "hi"
	})).Return(nil)

	tweet, err := svc.PostTweet(ctx, "ana", "hi")

	assert.NoError(t, err)
	assert.Equal(t, "hi", tweet.Text)
	tweetRepo.AssertExpectations(t)
}

func TestPostTweet_UnknownUser(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "bob").Return(nil, util.ErrNotFound)

	tweet, err := svc.PostTweet(ctx, "bob", "x")

	assert.Nil(t, tweet)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	tweetRepo.AssertNotCalled(t, "CreateTweet", mock.Anything, mock.Anything)
}

func TestUserTimeline_AnnotatesAvatarAndKeepsOrder(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	user := domain.NewUser("ana", "https://example.com/a.png")
	userRepo.On("GetUserByUsername", ctx, "ana").Return(user, nil)

	newer := domain.Tweet{ID: primitive.NewObjectID(), Username: "ana", Text: "second", CreatedAt: time.Now().UTC()}
	older := domain.Tweet{ID: primitive.NewObjectID(), Username: "ana", Text: "first", CreatedAt: time.Now().UTC().Add(-time.Minute)}
	tweetRepo.On("ListTweetsByUsername", ctx, "ana").Return([]domain.Tweet{newer, older}, nil)

	items, err := svc.UserTimeline(ctx, "ana")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Tweet)
	assert.Equal(t, "first", items[1].Tweet)
	assert.Equal(t, "https://example.com/a.png", items[0].Avatar)
	assert.Equal(t, "https://example.com/a.png", items[1].Avatar)
	assert.Equal(t, newer.ID, items[0].ID)
}

func TestUserTimeline_UnknownUser(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, util.ErrNotFound)

	items, err := svc.UserTimeline(ctx, "ghost")

	assert.Nil(t, items)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	tweetRepo.AssertNotCalled(t, "ListTweetsByUsername", mock.Anything, mock.Anything)
}

func TestTimeline_MissingAuthorYieldsEmptyAvatar(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	byAna := domain.Tweet{ID: primitive.NewObjectID(), Username: "ana", Text: "hi", CreatedAt: time.Now().UTC()}
	byGhost := domain.Tweet{ID: primitive.NewObjectID(), Username: "ghost", Text: "boo", CreatedAt: time.Now().UTC().Add(-time.Minute)}
	tweetRepo.On("ListTweets", ctx).Return([]domain.Tweet{byAna, byGhost}, nil)

	userRepo.On("GetUserByUsername", ctx, "ana").Return(domain.NewUser("ana", "https://example.com/a.png"), nil)
	userRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, util.ErrNotFound)

	items, err := svc.Timeline(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "https://example.com/a.png", items[0].Avatar)
	assert.Equal(t, "", items[1].Avatar)
}

func TestTimeline_LookupStorageErrorPropagates(t *testing.T) {
	svc, userRepo, tweetRepo := newTestService()
	ctx := context.Background()

	tweet := domain.Tweet{ID: primitive.NewObjectID(), Username: "ana", Text: "hi", CreatedAt: time.Now().UTC()}
	tweetRepo.On("ListTweets", ctx).Return([]domain.Tweet{tweet}, nil)
	userRepo.On("GetUserByUsername", ctx, "ana").Return(nil, errors.New("connection reset"))

	items, err := svc.Timeline(ctx)

	assert.Nil(t, items)
	assert.Error(t, err)
}

func TestEditTweet_NotFound(t *testing.T) {
	svc, _, tweetRepo := newTestService()
	ctx := context.Background()
	id := primitive.NewObjectID()

	tweetRepo.On("UpdateTweetText", ctx, id, "edited").Return(util.ErrTweetNotFound)

	err := svc.EditTweet(ctx, id, "edited")

	assert.ErrorIs(t, err, util.ErrTweetNotFound)
}

func TestRemoveTweet_ThenNotFound(t *testing.T) {
	svc, _, tweetRepo := newTestService()
	ctx := context.Background()
	id := primitive.NewObjectID()

	tweetRepo.On("DeleteTweet", ctx, id).Return(nil).Once()
	tweetRepo.On("DeleteTweet", ctx, id).Return(util.ErrTweetNotFound).Once()

	assert.NoError(t, svc.RemoveTweet(ctx, id))
	assert.ErrorIs(t, svc.RemoveTweet(ctx, id), util.ErrTweetNotFound)
}

func TestListUsers(t *testing.T) {
	svc, userRepo, _ := newTestService()
	ctx := context.Background()

	users := []domain.User{*domain.NewUser("bob", ""), *domain.NewUser("ana", "")}
	userRepo.On("ListUsers", ctx).Return(users, nil)

	got, err := svc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Equal(t, users, got)
}
