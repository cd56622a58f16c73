package mongodb

import (
	"context"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakif/tuiter/internal/model"
)

func (s *Store) bookmarks() *mongo.Collection { return s.db.Collection(bookmarksCollection) }

func (s *Store) CreateBookmark(ctx context.Context, b *model.Bookmark) error {
	b.ID = xid.New().String()
	if b.BookmarkedAt.IsZero() {
		b.BookmarkedAt = time.Now()
	}
	b.BookmarkedAt = b.BookmarkedAt.UTC().Truncate(time.Millisecond)
	return insert(ctx, s.bookmarks(), "creating bookmark", b)
}

func (s *Store) DeleteBookmarks(ctx context.Context, uid, tid string) (int64, error) {
	return deleteMany(ctx, s.bookmarks(), "deleting bookmarks", bson.D{
		{Key: "bookmarkedBy", Value: uid},
		{Key: "tuit", Value: tid},
	})
}

func (s *Store) ListBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	return findAll[model.Bookmark](ctx, s.bookmarks(), "listing bookmarks by user",
		bson.D{{Key: "bookmarkedBy", Value: uid}})
}

func (s *Store) ListBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	return findAll[model.Bookmark](ctx, s.bookmarks(), "listing bookmarks", bson.D{})
}

func (s *Store) ListLatestBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	return findAll[model.Bookmark](ctx, s.bookmarks(), "listing latest bookmarks",
		bson.D{{Key: "bookmarkedBy", Value: uid}},
		options.Find().SetSort(newestFirst("bookmarkedAt")))
}

// newestFirst sorts on field descending with _id as the tiebreak.
func newestFirst(field string) bson.D {
	return bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}}
}
