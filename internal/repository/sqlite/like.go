package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/model"
)

// CreateLike always inserts, even if the same user already liked the tuit.
func (db *DB) CreateLike(ctx context.Context, like *model.Like) error {
	like.ID = xid.New().String()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO likes (id, tuit, liked_by) VALUES (?, ?, ?)`,
		like.ID, like.Tuit, like.LikedBy,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating like: %w", err)
	}
	return nil
}

func (db *DB) DeleteLikes(ctx context.Context, uid, tid string) (int64, error) {
	return execCount(ctx, db.conn, "deleting likes",
		`DELETE FROM likes WHERE liked_by = ? AND tuit = ?`, uid, tid)
}

func (db *DB) ListLikesByUser(ctx context.Context, uid string) ([]model.Like, error) {
	return queryAll(ctx, db.conn, "listing likes by user", scanLike,
		`SELECT id, tuit, liked_by FROM likes WHERE liked_by = ?`, uid)
}

func (db *DB) ListLikesByTuit(ctx context.Context, tid string) ([]model.Like, error) {
	return queryAll(ctx, db.conn, "listing likes by tuit", scanLike,
		`SELECT id, tuit, liked_by FROM likes WHERE tuit = ?`, tid)
}

func (db *DB) ListLikes(ctx context.Context) ([]model.Like, error) {
	return queryAll(ctx, db.conn, "listing likes", scanLike,
		`SELECT id, tuit, liked_by FROM likes`)
}

func scanLike(rows *sql.Rows) (model.Like, error) {
	var l model.Like
	err := rows.Scan(&l.ID, &l.Tuit, &l.LikedBy)
	return l, err
}
