// Package mongodb implements repository.Store on MongoDB.
//
// Each resource gets its own collection named after it. Documents use the
// model bson tags directly, with an xid string as _id, so the same records
// round-trip through either backend.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakif/tuiter/internal/repository"
)

// Collection names.
const (
	usersCollection     = "users"
	tuitsCollection     = "tuits"
	likesCollection     = "likes"
	bookmarksCollection = "bookmarks"
	followersCollection = "followers"
	messagesCollection  = "messages"
)

var _ repository.Store = (*Store)(nil)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Config holds what New needs to reach the server.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// New connects, pings, and creates the secondary indexes. The returned Store
// owns the client and disconnects it on Close.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo: connecting: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(cfg.Database)}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo: ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// indexes mirrors the SQLite migration: one index per field that a list
// query filters or sorts on.
var indexes = map[string][]bson.D{
	usersCollection:     {{{Key: "username", Value: 1}}},
	tuitsCollection:     {{{Key: "postedBy", Value: 1}}},
	likesCollection:     {{{Key: "likedBy", Value: 1}}, {{Key: "tuit", Value: 1}}},
	bookmarksCollection: {{{Key: "bookmarkedBy", Value: 1}, {Key: "bookmarkedAt", Value: -1}}},
	followersCollection: {{{Key: "follower", Value: 1}}, {{Key: "followee", Value: 1}}},
	messagesCollection:  {{{Key: "sender", Value: 1}}, {{Key: "receiver", Value: 1}, {Key: "sentOn", Value: -1}}},
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	for coll, keys := range indexes {
		models := make([]mongo.IndexModel, 0, len(keys))
		for _, k := range keys {
			models = append(models, mongo.IndexModel{Keys: k})
		}
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo: creating %s indexes: %w", coll, err)
		}
	}
	return nil
}

// findAll runs Find on coll and decodes every document into a []T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, what string, filter bson.D, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongo: %s: %w", what, err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: %s: decoding: %w", what, err)
	}
	return out, nil
}

// findOne decodes the single document matching filter. A missing document
// comes back as mongo.ErrNoDocuments for the caller to translate.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) (*T, error) {
	var v T
	if err := coll.FindOne(ctx, filter).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func insert(ctx context.Context, coll *mongo.Collection, what string, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo: %s: %w", what, err)
	}
	return nil
}

func deleteMany(ctx context.Context, coll *mongo.Collection, what string, filter bson.D) (int64, error) {
	res, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongo: %s: %w", what, err)
	}
	return res.DeletedCount, nil
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
