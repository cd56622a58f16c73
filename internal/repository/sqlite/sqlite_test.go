package sqlite

import (
	"context"
	"testing"
)

// newTestDB opens a fresh in-memory database for one test and closes it
// when the test finishes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew_MigratesSchema(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"users", "tuits", "likes", "bookmarks", "followers", "messages"} {
		var name string
		err := db.conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after migration: %v", table, err)
		}
	}
}

func TestNew_FileDatabaseReopens(t *testing.T) {
	path := t.TempDir() + "/tuiter.db"

	first, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Second open sees the schema already applied (ErrNoChange is not an error).
	second, err := New(path)
	if err != nil {
		t.Fatalf("New() on existing db error = %v", err)
	}
	defer second.Close()
}

func TestPing(t *testing.T) {
	db := newTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
