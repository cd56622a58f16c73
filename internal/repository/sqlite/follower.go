package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/model"
)

// CreateFollow records follower → followee. Neither self-follows nor
// repeats are rejected.
func (db *DB) CreateFollow(ctx context.Context, f *model.Follower) error {
	f.ID = xid.New().String()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO followers (id, follower, followee) VALUES (?, ?, ?)`,
		f.ID, f.Follower, f.Followee,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating follow: %w", err)
	}
	return nil
}

func (db *DB) DeleteFollows(ctx context.Context, follower, followee string) (int64, error) {
	return execCount(ctx, db.conn, "deleting follows",
		`DELETE FROM followers WHERE follower = ? AND followee = ?`, follower, followee)
}

func (db *DB) ListFollowing(ctx context.Context, uid string) ([]model.Follower, error) {
	return queryAll(ctx, db.conn, "listing followees", scanFollower,
		`SELECT id, follower, followee FROM followers WHERE follower = ?`, uid)
}

func (db *DB) ListFollowers(ctx context.Context, uid string) ([]model.Follower, error) {
	return queryAll(ctx, db.conn, "listing followers", scanFollower,
		`SELECT id, follower, followee FROM followers WHERE followee = ?`, uid)
}

func (db *DB) ListFollows(ctx context.Context) ([]model.Follower, error) {
	return queryAll(ctx, db.conn, "listing follows", scanFollower,
		`SELECT id, follower, followee FROM followers`)
}

// TopFollowed is the GROUP BY form of the most-followed aggregation.
// Ties on count are broken by followee id ascending so the result is
// deterministic.
func (db *DB) TopFollowed(ctx context.Context, limit int) ([]model.FollowCount, error) {
	return queryAll(ctx, db.conn, "aggregating top followed",
		func(rows *sql.Rows) (model.FollowCount, error) {
			var fc model.FollowCount
			err := rows.Scan(&fc.Followee, &fc.Count)
			return fc, err
		},
		`SELECT followee, COUNT(*) AS count
		 FROM followers
		 GROUP BY followee
		 ORDER BY count DESC, followee ASC
		 LIMIT ?`, limit)
}

func scanFollower(rows *sql.Rows) (model.Follower, error) {
	var f model.Follower
	err := rows.Scan(&f.ID, &f.Follower, &f.Followee)
	return f, err
}
