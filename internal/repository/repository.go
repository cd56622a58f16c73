// Package repository declares the storage contracts for every Tuiter resource.
//
// Two implementations exist: repository/sqlite (embedded, the default) and
// repository/mongodb (the document store). Services depend only on these
// interfaces, so either backend can be injected.
//
// CONVENTIONS:
//   - Create* fills in the id and any unset timestamp on the passed record.
//   - Get* of a single record returns apperror.ErrNotFound when it is absent.
//   - List* returns an empty (non-nil) slice when nothing matches. Order is
//     unspecified unless the method name says otherwise.
//   - Delete* removes every matching record and reports the count; zero
//     matches is not an error.
package repository

import (
	"context"

	"github.com/sakif/tuiter/internal/model"
)

// TopFollowedLimit is how many users the most-followed aggregation returns.
const TopFollowedLimit = 5

// RecentMessagesLimit caps the "recent messages" query.
const RecentMessagesLimit = 5

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
	DeleteUsersByUsername(ctx context.Context, username string) (int64, error)
}

type TuitRepository interface {
	CreateTuit(ctx context.Context, tuit *model.Tuit) error
	GetTuitByID(ctx context.Context, id string) (*model.Tuit, error)
	ListTuits(ctx context.Context) ([]model.Tuit, error)
	ListTuitsByUser(ctx context.Context, uid string) ([]model.Tuit, error)
	// UpdateTuitText replaces the text of tuit id. postedBy and postedOn are
	// left alone. A missing id yields a zero MatchedCount, not an error.
	UpdateTuitText(ctx context.Context, id, text string) (model.UpdateResult, error)
	DeleteTuit(ctx context.Context, id string) (int64, error)
}

type LikeRepository interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLikes(ctx context.Context, uid, tid string) (int64, error)
	ListLikesByUser(ctx context.Context, uid string) ([]model.Like, error)
	ListLikesByTuit(ctx context.Context, tid string) ([]model.Like, error)
	ListLikes(ctx context.Context) ([]model.Like, error)
}

type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	DeleteBookmarks(ctx context.Context, uid, tid string) (int64, error)
	ListBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error)
	ListBookmarks(ctx context.Context) ([]model.Bookmark, error)
	// ListLatestBookmarksByUser orders by bookmarkedAt descending.
	ListLatestBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error)
}

type FollowerRepository interface {
	CreateFollow(ctx context.Context, follow *model.Follower) error
	DeleteFollows(ctx context.Context, follower, followee string) (int64, error)
	// ListFollowing returns the edges where uid is the follower.
	ListFollowing(ctx context.Context, uid string) ([]model.Follower, error)
	// ListFollowers returns the edges where uid is the followee.
	ListFollowers(ctx context.Context, uid string) ([]model.Follower, error)
	ListFollows(ctx context.Context) ([]model.Follower, error)
	// TopFollowed groups every edge by followee and returns the limit largest
	// groups, ordered by count descending then followee id ascending.
	TopFollowed(ctx context.Context, limit int) ([]model.FollowCount, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *model.Message) error
	// DeleteMessage only removes message id if it was sent by sender.
	DeleteMessage(ctx context.Context, sender, id string) (int64, error)
	ListMessagesSent(ctx context.Context, uid string) ([]model.Message, error)
	ListMessagesReceived(ctx context.Context, uid string) ([]model.Message, error)
	// ListRecentMessagesReceived orders by sentOn descending and keeps at
	// most limit messages.
	ListRecentMessagesReceived(ctx context.Context, uid string, limit int) ([]model.Message, error)
	ListMessages(ctx context.Context) ([]model.Message, error)
}

// Store is everything a backend provides. The server owns exactly one Store
// for the life of the process and closes it on shutdown.
type Store interface {
	UserRepository
	TuitRepository
	LikeRepository
	BookmarkRepository
	FollowerRepository
	MessageRepository

	Ping(ctx context.Context) error
	Close() error
}
