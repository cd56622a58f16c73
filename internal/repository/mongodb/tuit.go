package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
)

func (s *Store) tuits() *mongo.Collection { return s.db.Collection(tuitsCollection) }

func (s *Store) CreateTuit(ctx context.Context, tuit *model.Tuit) error {
	tuit.ID = xid.New().String()
	if tuit.PostedOn.IsZero() {
		tuit.PostedOn = time.Now()
	}
	// BSON dates carry millisecond precision; truncate so the caller's copy
	// matches what a later read returns.
	tuit.PostedOn = tuit.PostedOn.UTC().Truncate(time.Millisecond)
	return insert(ctx, s.tuits(), "creating tuit", tuit)
}

func (s *Store) GetTuitByID(ctx context.Context, id string) (*model.Tuit, error) {
	t, err := findOne[model.Tuit](ctx, s.tuits(), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperror.NotFound("tuit", id)
		}
		return nil, fmt.Errorf("mongo: getting tuit %s: %w", id, err)
	}
	return t, nil
}

func (s *Store) ListTuits(ctx context.Context) ([]model.Tuit, error) {
	return findAll[model.Tuit](ctx, s.tuits(), "listing tuits", bson.D{})
}

func (s *Store) ListTuitsByUser(ctx context.Context, uid string) ([]model.Tuit, error) {
	return findAll[model.Tuit](ctx, s.tuits(), "listing tuits by user", bson.D{{Key: "postedBy", Value: uid}})
}

// UpdateTuitText uses $set on the text field alone, so postedBy and
// postedOn are untouched. Unlike SQLite, ModifiedCount is 0 when the new
// text equals the old.
func (s *Store) UpdateTuitText(ctx context.Context, id, text string) (model.UpdateResult, error) {
	res, err := s.tuits().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "tuit", Value: text}}}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("mongo: updating tuit %s: %w", id, err)
	}
	return model.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Store) DeleteTuit(ctx context.Context, id string) (int64, error) {
	return deleteMany(ctx, s.tuits(), "deleting tuit "+id, bson.D{{Key: "_id", Value: id}})
}
