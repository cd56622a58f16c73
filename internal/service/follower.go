package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// FollowerService manages follow edges and the most-followed ranking.
type FollowerService struct {
	follows repository.FollowerRepository
	logger  *slog.Logger
}

func NewFollowerService(follows repository.FollowerRepository, logger *slog.Logger) *FollowerService {
	return &FollowerService{follows: follows, logger: logger}
}

// UserFollowsUser records follower → followee. Self-follows are allowed.
func (s *FollowerService) UserFollowsUser(ctx context.Context, follower, followee string) (*model.Follower, error) {
	ids, err := requireIDs("follower", follower, "followee", followee)
	if err != nil {
		return nil, err
	}
	f := &model.Follower{Follower: ids[0], Followee: ids[1]}
	if err := s.follows.CreateFollow(ctx, f); err != nil {
		s.logger.Error("failed to follow user",
			slog.String("follower", f.Follower),
			slog.String("followee", f.Followee),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("following user: %w", err)
	}
	s.logger.Info("user followed", slog.String("follower", f.Follower), slog.String("followee", f.Followee))
	return f, nil
}

func (s *FollowerService) UserUnfollowsUser(ctx context.Context, follower, followee string) (model.DeleteResult, error) {
	ids, err := requireIDs("follower", follower, "followee", followee)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.follows.DeleteFollows(ctx, ids[0], ids[1])
	if err != nil {
		s.logger.Error("failed to unfollow user", slog.String("follower", ids[0]), slog.String("followee", ids[1]), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("unfollowing user: %w", err)
	}
	return model.DeleteResult{DeletedCount: n}, nil
}

// FindFollowing lists the edges where uid is the follower.
func (s *FollowerService) FindFollowing(ctx context.Context, uid string) ([]model.Follower, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.follows.ListFollowing(ctx, uid))
}

// FindFollowers lists the edges where uid is the followee.
func (s *FollowerService) FindFollowers(ctx context.Context, uid string) ([]model.Follower, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.follows.ListFollowers(ctx, uid))
}

func (s *FollowerService) FindAllFollows(ctx context.Context) ([]model.Follower, error) {
	return s.list(s.follows.ListFollows(ctx))
}

// FindTopFollowed returns at most repository.TopFollowedLimit followees,
// highest follower count first, ties by id ascending.
func (s *FollowerService) FindTopFollowed(ctx context.Context) ([]model.FollowCount, error) {
	top, err := s.follows.TopFollowed(ctx, repository.TopFollowedLimit)
	if err != nil {
		s.logger.Error("failed to aggregate top followed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("finding top followed: %w", err)
	}
	return top, nil
}

func (s *FollowerService) list(follows []model.Follower, err error) ([]model.Follower, error) {
	if err != nil {
		s.logger.Error("failed to list follows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing follows: %w", err)
	}
	return follows, nil
}
