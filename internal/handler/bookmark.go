package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/tuiter/internal/service"
)

type BookmarkHandler struct {
	bookmarks *service.BookmarkService
	logger    *slog.Logger
}

func NewBookmarkHandler(bookmarks *service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks, logger: logger}
}

// HandleBookmark serves POST /api/users/{uid}/bookmarks/{tid}.
func (h *BookmarkHandler) HandleBookmark(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookmarks.UserBookmarksTuit(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// HandleUnbookmark serves DELETE /api/users/{uid}/bookmarks/{tid}.
func (h *BookmarkHandler) HandleUnbookmark(w http.ResponseWriter, r *http.Request) {
	res, err := h.bookmarks.UserUnbookmarksTuit(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleListByUser serves GET /api/users/{uid}/bookmarks.
func (h *BookmarkHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookmarks.FindBookmarksByUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleLatestByUser serves GET /api/users/{uid}/bookmarks/latest.
func (h *BookmarkHandler) HandleLatestByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookmarks.FindLatestBookmarksByUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleList serves GET /api/bookmarks.
func (h *BookmarkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.bookmarks.FindAllBookmarks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
