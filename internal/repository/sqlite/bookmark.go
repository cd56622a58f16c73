package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/model"
)

// CreateBookmark inserts a bookmark edge, defaulting BookmarkedAt to now.
func (db *DB) CreateBookmark(ctx context.Context, b *model.Bookmark) error {
	b.ID = xid.New().String()
	if b.BookmarkedAt.IsZero() {
		b.BookmarkedAt = time.Now()
	}
	// Stored as text; keeping everything in UTC makes ORDER BY on the
	// column chronological.
	b.BookmarkedAt = b.BookmarkedAt.UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO bookmarks (id, tuit, bookmarked_by, bookmarked_at) VALUES (?, ?, ?, ?)`,
		b.ID, b.Tuit, b.BookmarkedBy, b.BookmarkedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating bookmark: %w", err)
	}
	return nil
}

func (db *DB) DeleteBookmarks(ctx context.Context, uid, tid string) (int64, error) {
	return execCount(ctx, db.conn, "deleting bookmarks",
		`DELETE FROM bookmarks WHERE bookmarked_by = ? AND tuit = ?`, uid, tid)
}

func (db *DB) ListBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	return queryAll(ctx, db.conn, "listing bookmarks by user", scanBookmark,
		`SELECT id, tuit, bookmarked_by, bookmarked_at FROM bookmarks WHERE bookmarked_by = ?`, uid)
}

func (db *DB) ListBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	return queryAll(ctx, db.conn, "listing bookmarks", scanBookmark,
		`SELECT id, tuit, bookmarked_by, bookmarked_at FROM bookmarks`)
}

// ListLatestBookmarksByUser returns newest first. Equal timestamps fall back
// to id, and xids sort by creation time.
func (db *DB) ListLatestBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	return queryAll(ctx, db.conn, "listing latest bookmarks", scanBookmark,
		`SELECT id, tuit, bookmarked_by, bookmarked_at
		 FROM bookmarks
		 WHERE bookmarked_by = ?
		 ORDER BY bookmarked_at DESC, id DESC`, uid)
}

func scanBookmark(rows *sql.Rows) (model.Bookmark, error) {
	var b model.Bookmark
	err := rows.Scan(&b.ID, &b.Tuit, &b.BookmarkedBy, &b.BookmarkedAt)
	return b, err
}
