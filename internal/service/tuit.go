package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// MaxTuitLength is the longest tuit text accepted, in characters.
const MaxTuitLength = 280

type TuitService struct {
	tuits  repository.TuitRepository
	logger *slog.Logger
}

func NewTuitService(tuits repository.TuitRepository, logger *slog.Logger) *TuitService {
	return &TuitService{tuits: tuits, logger: logger}
}

// CreateTuit stores t as authored by uid. Any postedBy in the body is
// overwritten; a zero postedOn becomes now.
func (s *TuitService) CreateTuit(ctx context.Context, uid string, t *model.Tuit) (*model.Tuit, error) {
	t.ID = ""
	t.PostedBy = strings.TrimSpace(uid)
	t.Text = strings.TrimSpace(t.Text)

	if err := validateStruct(t); err != nil {
		return nil, err
	}

	if err := s.tuits.CreateTuit(ctx, t); err != nil {
		s.logger.Error("failed to create tuit",
			slog.String("posted_by", t.PostedBy),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating tuit: %w", err)
	}

	s.logger.Info("tuit created", slog.String("id", t.ID), slog.String("posted_by", t.PostedBy))
	return t, nil
}

func (s *TuitService) FindAllTuits(ctx context.Context) ([]model.Tuit, error) {
	tuits, err := s.tuits.ListTuits(ctx)
	if err != nil {
		s.logger.Error("failed to list tuits", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing tuits: %w", err)
	}
	return tuits, nil
}

func (s *TuitService) FindTuitByID(ctx context.Context, tid string) (*model.Tuit, error) {
	tid, err := requireID("tid", tid)
	if err != nil {
		return nil, err
	}
	return s.tuits.GetTuitByID(ctx, tid)
}

func (s *TuitService) FindTuitsByUser(ctx context.Context, uid string) ([]model.Tuit, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	tuits, err := s.tuits.ListTuitsByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to list tuits by user", slog.String("uid", uid), slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing tuits by user: %w", err)
	}
	return tuits, nil
}

// UpdateTuit replaces only the text. An unknown tid is a zero-count result.
func (s *TuitService) UpdateTuit(ctx context.Context, tid, text string) (model.UpdateResult, error) {
	tid, err := requireID("tid", tid)
	if err != nil {
		return model.UpdateResult{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.UpdateResult{}, apperror.ValidationFailed("tuit", "tuit is required")
	}
	if utf8.RuneCountInString(text) > MaxTuitLength {
		return model.UpdateResult{}, apperror.ValidationFailed("tuit",
			fmt.Sprintf("tuit must be at most %d characters", MaxTuitLength))
	}

	res, err := s.tuits.UpdateTuitText(ctx, tid, text)
	if err != nil {
		s.logger.Error("failed to update tuit", slog.String("id", tid), slog.String("error", err.Error()))
		return model.UpdateResult{}, fmt.Errorf("updating tuit: %w", err)
	}
	s.logger.Info("tuit updated", slog.String("id", tid), slog.Int64("matched", res.MatchedCount))
	return res, nil
}

func (s *TuitService) DeleteTuit(ctx context.Context, tid string) (model.DeleteResult, error) {
	tid, err := requireID("tid", tid)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.tuits.DeleteTuit(ctx, tid)
	if err != nil {
		s.logger.Error("failed to delete tuit", slog.String("id", tid), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("deleting tuit: %w", err)
	}
	s.logger.Info("tuit deleted", slog.String("id", tid), slog.Int64("deleted", n))
	return model.DeleteResult{DeletedCount: n}, nil
}
