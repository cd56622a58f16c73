package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

type BookmarkService struct {
	bookmarks repository.BookmarkRepository
	logger    *slog.Logger
}

func NewBookmarkService(bookmarks repository.BookmarkRepository, logger *slog.Logger) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, logger: logger}
}

// UserBookmarksTuit stamps the bookmark with the current time.
func (s *BookmarkService) UserBookmarksTuit(ctx context.Context, uid, tid string) (*model.Bookmark, error) {
	ids, err := requireIDs("uid", uid, "tid", tid)
	if err != nil {
		return nil, err
	}
	b := &model.Bookmark{BookmarkedBy: ids[0], Tuit: ids[1]}
	if err := s.bookmarks.CreateBookmark(ctx, b); err != nil {
		s.logger.Error("failed to bookmark tuit",
			slog.String("uid", b.BookmarkedBy),
			slog.String("tid", b.Tuit),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("bookmarking tuit: %w", err)
	}
	s.logger.Info("tuit bookmarked", slog.String("uid", b.BookmarkedBy), slog.String("tid", b.Tuit))
	return b, nil
}

func (s *BookmarkService) UserUnbookmarksTuit(ctx context.Context, uid, tid string) (model.DeleteResult, error) {
	ids, err := requireIDs("uid", uid, "tid", tid)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.bookmarks.DeleteBookmarks(ctx, ids[0], ids[1])
	if err != nil {
		s.logger.Error("failed to unbookmark tuit", slog.String("uid", ids[0]), slog.String("tid", ids[1]), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("unbookmarking tuit: %w", err)
	}
	return model.DeleteResult{DeletedCount: n}, nil
}

func (s *BookmarkService) FindBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.bookmarks.ListBookmarksByUser(ctx, uid))
}

// FindLatestBookmarksByUser returns the user's bookmarks newest first.
func (s *BookmarkService) FindLatestBookmarksByUser(ctx context.Context, uid string) ([]model.Bookmark, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.bookmarks.ListLatestBookmarksByUser(ctx, uid))
}

func (s *BookmarkService) FindAllBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	return s.list(s.bookmarks.ListBookmarks(ctx))
}

func (s *BookmarkService) list(bookmarks []model.Bookmark, err error) ([]model.Bookmark, error) {
	if err != nil {
		s.logger.Error("failed to list bookmarks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	return bookmarks, nil
}
