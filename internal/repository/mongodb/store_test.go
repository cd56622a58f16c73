package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// newTestStore connects to TUITER_TEST_MONGO_URI and uses a throwaway
// database that is dropped when the test ends. Without the variable the
// test is skipped.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("TUITER_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TUITER_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	s, err := New(ctx, Config{
		URI:      uri,
		Database: "tuiter_test_" + xid.New().String(),
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.db.Drop(context.Background())
		_ = s.Close()
	})
	return s
}

func TestStore_UserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &model.User{Username: "alice", Password: "hash", Salary: model.DefaultSalary}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)

	got, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	n, err := s.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_UpdateTuitText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tu := &model.Tuit{Text: "draft", PostedBy: "u1"}
	require.NoError(t, s.CreateTuit(ctx, tu))

	res, err := s.UpdateTuitText(ctx, tu.ID, "final")
	require.NoError(t, err)
	assert.Equal(t, model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	got, err := s.GetTuitByID(ctx, tu.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Text)
	assert.Equal(t, "u1", got.PostedBy)
	assert.True(t, got.PostedOn.Equal(tu.PostedOn))

	res, err = s.UpdateTuitText(ctx, "missing", "x")
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
}

func TestStore_TopFollowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for followee, n := range map[string]int{"A": 5, "B": 5, "C": 3, "D": 1} {
		for i := 0; i < n; i++ {
			require.NoError(t, s.CreateFollow(ctx, &model.Follower{Follower: "fan", Followee: followee}))
		}
	}

	got, err := s.TopFollowed(ctx, repository.TopFollowedLimit)
	require.NoError(t, err)
	assert.Equal(t, []model.FollowCount{
		{Followee: "A", Count: 5},
		{Followee: "B", Count: 5},
		{Followee: "C", Count: 3},
		{Followee: "D", Count: 1},
	}, got)
}

func TestStore_RecentMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.NoError(t, s.CreateMessage(ctx, &model.Message{
			Sender: "s", Receiver: "r", MessageBody: "hi",
			SentOn: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := s.ListRecentMessagesReceived(ctx, "r", repository.RecentMessagesLimit)
	require.NoError(t, err)
	require.Len(t, got, repository.RecentMessagesLimit)
	assert.True(t, got[0].SentOn.Equal(base.Add(6*time.Minute)))

	n, err := s.DeleteMessage(ctx, "r", got[0].ID)
	require.NoError(t, err)
	assert.Zero(t, n, "only the sender may delete")
}

func TestStore_DuplicateLikesDeletedTogether(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateLike(ctx, &model.Like{Tuit: "t1", LikedBy: "u1"}))
	require.NoError(t, s.CreateLike(ctx, &model.Like{Tuit: "t1", LikedBy: "u1"}))

	n, err := s.DeleteLikes(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
