package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// LikeService records which users liked which tuits. Liking twice creates
// two edges; unliking removes both.
type LikeService struct {
	likes  repository.LikeRepository
	logger *slog.Logger
}

func NewLikeService(likes repository.LikeRepository, logger *slog.Logger) *LikeService {
	return &LikeService{likes: likes, logger: logger}
}

func (s *LikeService) UserLikesTuit(ctx context.Context, uid, tid string) (*model.Like, error) {
	ids, err := requireIDs("uid", uid, "tid", tid)
	if err != nil {
		return nil, err
	}
	like := &model.Like{LikedBy: ids[0], Tuit: ids[1]}
	if err := s.likes.CreateLike(ctx, like); err != nil {
		s.logger.Error("failed to like tuit",
			slog.String("uid", like.LikedBy),
			slog.String("tid", like.Tuit),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("liking tuit: %w", err)
	}
	s.logger.Info("tuit liked", slog.String("uid", like.LikedBy), slog.String("tid", like.Tuit))
	return like, nil
}

func (s *LikeService) UserUnlikesTuit(ctx context.Context, uid, tid string) (model.DeleteResult, error) {
	ids, err := requireIDs("uid", uid, "tid", tid)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.likes.DeleteLikes(ctx, ids[0], ids[1])
	if err != nil {
		s.logger.Error("failed to unlike tuit", slog.String("uid", ids[0]), slog.String("tid", ids[1]), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("unliking tuit: %w", err)
	}
	return model.DeleteResult{DeletedCount: n}, nil
}

func (s *LikeService) FindTuitsLikedByUser(ctx context.Context, uid string) ([]model.Like, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.likes.ListLikesByUser(ctx, uid))
}

func (s *LikeService) FindUsersThatLikedTuit(ctx context.Context, tid string) ([]model.Like, error) {
	tid, err := requireID("tid", tid)
	if err != nil {
		return nil, err
	}
	return s.list(s.likes.ListLikesByTuit(ctx, tid))
}

func (s *LikeService) FindAllLikes(ctx context.Context) ([]model.Like, error) {
	return s.list(s.likes.ListLikes(ctx))
}

func (s *LikeService) list(likes []model.Like, err error) ([]model.Like, error) {
	if err != nil {
		s.logger.Error("failed to list likes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing likes: %w", err)
	}
	return likes, nil
}
