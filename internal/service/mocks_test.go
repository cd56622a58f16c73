package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/sakif/tuiter/internal/model"
)

// discardLogger keeps service logs out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =========================================================================
// testify mocks, one per repository interface
// =========================================================================

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) DeleteUsersByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

type mockTuitRepo struct{ mock.Mock }

func (m *mockTuitRepo) CreateTuit(ctx context.Context, t *model.Tuit) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTuitRepo) GetTuitByID(ctx context.Context, id string) (*model.Tuit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tuit), args.Error(1)
}

func (m *mockTuitRepo) ListTuits(ctx context.Context) ([]model.Tuit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Tuit), args.Error(1)
}

func (m *mockTuitRepo) ListTuitsByUser(ctx context.Context, uid string) ([]model.Tuit, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Tuit), args.Error(1)
}

func (m *mockTuitRepo) UpdateTuitText(ctx context.Context, id, text string) (model.UpdateResult, error) {
	args := m.Called(ctx, id, text)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *mockTuitRepo) DeleteTuit(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockLikeRepo struct{ mock.Mock }

func (m *mockLikeRepo) CreateLike(ctx context.Context, l *model.Like) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockLikeRepo) DeleteLikes(ctx context.Context, uid, tid string) (int64, error) {
	args := m.Called(ctx, uid, tid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeRepo) ListLikesByUser(ctx context.Context, uid string) ([]model.Like, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *mockLikeRepo) ListLikesByTuit(ctx context.Context, tid string) ([]model.Like, error) {
	args := m.Called(ctx, tid)
	return args.Get(0).([]model.Like), args.Error(1)
}

func (m *mockLikeRepo) ListLikes(ctx context.Context) ([]model.Like, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Like), args.Error(1)
}

type mockBookmarkRepo struct{ mock.Mock }

func (m *mockBookmarkRepo) CreateBookmark(ctx context.Context, b *model.Bookmark) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookmarkRepo) DeleteBookmarks(ctx context.Context, uid, tid string) (int64, error) {
	args := m.Called(ctx, uid, tid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookmarkRepo) ListBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

func (m *mockBookmarkRepo) ListBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

func (m *mockBookmarkRepo) ListLatestBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

type mockFollowerRepo struct{ mock.Mock }

func (m *mockFollowerRepo) CreateFollow(ctx context.Context, f *model.Follower) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFollowerRepo) DeleteFollows(ctx context.Context, follower, followee string) (int64, error) {
	args := m.Called(ctx, follower, followee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowerRepo) ListFollowing(ctx context.Context, uid string) ([]model.Follower, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Follower), args.Error(1)
}

func (m *mockFollowerRepo) ListFollowers(ctx context.Context, uid string) ([]model.Follower, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Follower), args.Error(1)
}

func (m *mockFollowerRepo) ListFollows(ctx context.Context) ([]model.Follower, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Follower), args.Error(1)
}

func (m *mockFollowerRepo) TopFollowed(ctx context.Context, limit int) ([]model.FollowCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.FollowCount), args.Error(1)
}

type mockMessageRepo struct{ mock.Mock }

func (m *mockMessageRepo) CreateMessage(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageRepo) DeleteMessage(ctx context.Context, sender, id string) (int64, error) {
	args := m.Called(ctx, sender, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) ListMessagesSent(ctx context.Context, uid string) ([]model.Message, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *mockMessageRepo) ListMessagesReceived(ctx context.Context, uid string) ([]model.Message, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *mockMessageRepo) ListRecentMessagesReceived(ctx context.Context, uid string, limit int) ([]model.Message, error) {
	args := m.Called(ctx, uid, limit)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *mockMessageRepo) ListMessages(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Message), args.Error(1)
}
