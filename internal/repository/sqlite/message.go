package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/tuiter/internal/model"
)

const messageColumns = `id, sender, receiver, message_body, sent_on`

// CreateMessage inserts a message, defaulting SentOn to now.
func (db *DB) CreateMessage(ctx context.Context, msg *model.Message) error {
	msg.ID = xid.New().String()
	if msg.SentOn.IsZero() {
		msg.SentOn = time.Now()
	}
	msg.SentOn = msg.SentOn.UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO messages (`+messageColumns+`) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Sender, msg.Receiver, msg.MessageBody, msg.SentOn,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating message: %w", err)
	}
	return nil
}

// DeleteMessage is scoped to the sender: another user's id matches nothing.
func (db *DB) DeleteMessage(ctx context.Context, sender, id string) (int64, error) {
	return execCount(ctx, db.conn, "deleting message "+id,
		`DELETE FROM messages WHERE sender = ? AND id = ?`, sender, id)
}

func (db *DB) ListMessagesSent(ctx context.Context, uid string) ([]model.Message, error) {
	return queryAll(ctx, db.conn, "listing sent messages", scanMessage,
		`SELECT `+messageColumns+` FROM messages WHERE sender = ?`, uid)
}

func (db *DB) ListMessagesReceived(ctx context.Context, uid string) ([]model.Message, error) {
	return queryAll(ctx, db.conn, "listing received messages", scanMessage,
		`SELECT `+messageColumns+` FROM messages WHERE receiver = ?`, uid)
}

func (db *DB) ListRecentMessagesReceived(ctx context.Context, uid string, limit int) ([]model.Message, error) {
	return queryAll(ctx, db.conn, "listing recent messages", scanMessage,
		`SELECT `+messageColumns+`
		 FROM messages
		 WHERE receiver = ?
		 ORDER BY sent_on DESC, id DESC
		 LIMIT ?`, uid, limit)
}

func (db *DB) ListMessages(ctx context.Context) ([]model.Message, error) {
	return queryAll(ctx, db.conn, "listing messages", scanMessage,
		`SELECT `+messageColumns+` FROM messages`)
}

func scanMessage(rows *sql.Rows) (model.Message, error) {
	var m model.Message
	err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.MessageBody, &m.SentOn)
	return m, err
}
