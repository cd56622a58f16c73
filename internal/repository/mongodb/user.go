package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
)

func (s *Store) users() *mongo.Collection { return s.db.Collection(usersCollection) }

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	user.ID = xid.New().String()
	if user.DateOfBirth != nil {
		dob := user.DateOfBirth.UTC()
		user.DateOfBirth = &dob
	}
	return insert(ctx, s.users(), fmt.Sprintf("inserting user %q", user.Username), user)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	u, err := findOne[model.User](ctx, s.users(), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("mongo: getting user %s: %w", id, err)
	}
	return u, nil
}

// GetUserByUsername picks the oldest matching user, like the SQLite store.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.users().FindOne(ctx,
		bson.D{{Key: "username", Value: username}},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&u)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperror.NotFound("user", username)
		}
		return nil, fmt.Errorf("mongo: getting user by username: %w", err)
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	return findAll[model.User](ctx, s.users(), "listing users", bson.D{})
}

func (s *Store) DeleteUser(ctx context.Context, id string) (int64, error) {
	return deleteMany(ctx, s.users(), "deleting user "+id, bson.D{{Key: "_id", Value: id}})
}

func (s *Store) DeleteUsersByUsername(ctx context.Context, username string) (int64, error) {
	return deleteMany(ctx, s.users(), "deleting users by username", bson.D{{Key: "username", Value: username}})
}
