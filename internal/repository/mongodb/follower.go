package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakif/tuiter/internal/model"
)

func (s *Store) followers() *mongo.Collection { return s.db.Collection(followersCollection) }

func (s *Store) CreateFollow(ctx context.Context, f *model.Follower) error {
	f.ID = xid.New().String()
	return insert(ctx, s.followers(), "creating follow", f)
}

func (s *Store) DeleteFollows(ctx context.Context, follower, followee string) (int64, error) {
	return deleteMany(ctx, s.followers(), "deleting follows", bson.D{
		{Key: "follower", Value: follower},
		{Key: "followee", Value: followee},
	})
}

func (s *Store) ListFollowing(ctx context.Context, uid string) ([]model.Follower, error) {
	return findAll[model.Follower](ctx, s.followers(), "listing followees", bson.D{{Key: "follower", Value: uid}})
}

func (s *Store) ListFollowers(ctx context.Context, uid string) ([]model.Follower, error) {
	return findAll[model.Follower](ctx, s.followers(), "listing followers", bson.D{{Key: "followee", Value: uid}})
}

func (s *Store) ListFollows(ctx context.Context) ([]model.Follower, error) {
	return findAll[model.Follower](ctx, s.followers(), "listing follows", bson.D{})
}

func (s *Store) TopFollowed(ctx context.Context, limit int) ([]model.FollowCount, error) {
	cur, err := s.followers().Aggregate(ctx, topFollowedPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("mongo: aggregating top followed: %w", err)
	}
	out := make([]model.FollowCount, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: aggregating top followed: decoding: %w", err)
	}
	return out, nil
}

// topFollowedPipeline groups follow edges by followee, counts them, and
// keeps the limit largest groups. The _id sort makes ties deterministic.
func topFollowedPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$followee"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}
