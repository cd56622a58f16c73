package mongodb

import (
	"context"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakif/tuiter/internal/model"
)

func (s *Store) likes() *mongo.Collection { return s.db.Collection(likesCollection) }

func (s *Store) CreateLike(ctx context.Context, like *model.Like) error {
	like.ID = xid.New().String()
	return insert(ctx, s.likes(), "creating like", like)
}

func (s *Store) DeleteLikes(ctx context.Context, uid, tid string) (int64, error) {
	return deleteMany(ctx, s.likes(), "deleting likes", bson.D{
		{Key: "likedBy", Value: uid},
		{Key: "tuit", Value: tid},
	})
}

func (s *Store) ListLikesByUser(ctx context.Context, uid string) ([]model.Like, error) {
	return findAll[model.Like](ctx, s.likes(), "listing likes by user", bson.D{{Key: "likedBy", Value: uid}})
}

func (s *Store) ListLikesByTuit(ctx context.Context, tid string) ([]model.Like, error) {
	return findAll[model.Like](ctx, s.likes(), "listing likes by tuit", bson.D{{Key: "tuit", Value: tid}})
}

func (s *Store) ListLikes(ctx context.Context) ([]model.Like, error) {
	return findAll[model.Like](ctx, s.likes(), "listing likes", bson.D{})
}
