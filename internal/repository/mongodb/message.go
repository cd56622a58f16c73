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

func (s *Store) messages() *mongo.Collection { return s.db.Collection(messagesCollection) }

func (s *Store) CreateMessage(ctx context.Context, msg *model.Message) error {
	msg.ID = xid.New().String()
	if msg.SentOn.IsZero() {
		msg.SentOn = time.Now()
	}
	msg.SentOn = msg.SentOn.UTC().Truncate(time.Millisecond)
	return insert(ctx, s.messages(), "creating message", msg)
}

func (s *Store) DeleteMessage(ctx context.Context, sender, id string) (int64, error) {
	return deleteMany(ctx, s.messages(), "deleting message "+id, bson.D{
		{Key: "sender", Value: sender},
		{Key: "_id", Value: id},
	})
}

func (s *Store) ListMessagesSent(ctx context.Context, uid string) ([]model.Message, error) {
	return findAll[model.Message](ctx, s.messages(), "listing sent messages", bson.D{{Key: "sender", Value: uid}})
}

func (s *Store) ListMessagesReceived(ctx context.Context, uid string) ([]model.Message, error) {
	return findAll[model.Message](ctx, s.messages(), "listing received messages", bson.D{{Key: "receiver", Value: uid}})
}

func (s *Store) ListRecentMessagesReceived(ctx context.Context, uid string, limit int) ([]model.Message, error) {
	return findAll[model.Message](ctx, s.messages(), "listing recent messages",
		bson.D{{Key: "receiver", Value: uid}},
		options.Find().SetSort(newestFirst("sentOn")).SetLimit(int64(limit)))
}

func (s *Store) ListMessages(ctx context.Context) ([]model.Message, error) {
	return findAll[model.Message](ctx, s.messages(), "listing messages", bson.D{})
}
