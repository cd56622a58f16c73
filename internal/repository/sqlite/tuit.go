package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
)

// CreateTuit inserts a tuit, stamping PostedOn with the current time when
// the caller left it zero.
func (db *DB) CreateTuit(ctx context.Context, tuit *model.Tuit) error {
	tuit.ID = xid.New().String()
	if tuit.PostedOn.IsZero() {
		tuit.PostedOn = time.Now()
	}
	tuit.PostedOn = tuit.PostedOn.UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO tuits (id, tuit, posted_by, posted_on) VALUES (?, ?, ?, ?)`,
		tuit.ID, tuit.Text, tuit.PostedBy, tuit.PostedOn,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating tuit: %w", err)
	}
	return nil
}

func (db *DB) GetTuitByID(ctx context.Context, id string) (*model.Tuit, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, tuit, posted_by, posted_on FROM tuits WHERE id = ?`, id)

	t, err := scanTuit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("tuit", id)
		}
		return nil, fmt.Errorf("sqlite: getting tuit %s: %w", id, err)
	}
	return &t, nil
}

func (db *DB) ListTuits(ctx context.Context) ([]model.Tuit, error) {
	return queryAll(ctx, db.conn, "listing tuits",
		func(rows *sql.Rows) (model.Tuit, error) { return scanTuit(rows) },
		`SELECT id, tuit, posted_by, posted_on FROM tuits`)
}

func (db *DB) ListTuitsByUser(ctx context.Context, uid string) ([]model.Tuit, error) {
	return queryAll(ctx, db.conn, "listing tuits by user",
		func(rows *sql.Rows) (model.Tuit, error) { return scanTuit(rows) },
		`SELECT id, tuit, posted_by, posted_on FROM tuits WHERE posted_by = ?`, uid)
}

// UpdateTuitText overwrites the text only.
//
// RowsAffected in SQLite counts matched rows, so MatchedCount and
// ModifiedCount come out equal here.
func (db *DB) UpdateTuitText(ctx context.Context, id, text string) (model.UpdateResult, error) {
	n, err := execCount(ctx, db.conn, "updating tuit "+id,
		`UPDATE tuits SET tuit = ? WHERE id = ?`, text, id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	return model.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

func (db *DB) DeleteTuit(ctx context.Context, id string) (int64, error) {
	return execCount(ctx, db.conn, "deleting tuit "+id,
		`DELETE FROM tuits WHERE id = ?`, id)
}

func scanTuit(s rowScanner) (model.Tuit, error) {
	var t model.Tuit
	if err := s.Scan(&t.ID, &t.Text, &t.PostedBy, &t.PostedOn); err != nil {
		return model.Tuit{}, err
	}
	return t, nil
}
