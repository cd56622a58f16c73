package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/tuiter/internal/service"
)

type LikeHandler struct {
	likes  *service.LikeService
	logger *slog.Logger
}

func NewLikeHandler(likes *service.LikeService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

// HandleLike serves POST /api/users/{uid}/likes/{tid}.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	like, err := h.likes.UserLikesTuit(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, like)
}

// HandleUnlike serves DELETE /api/users/{uid}/likes/{tid}.
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	res, err := h.likes.UserUnlikesTuit(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleListByUser serves GET /api/users/{uid}/likes.
func (h *LikeHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	likes, err := h.likes.FindTuitsLikedByUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// HandleListByTuit serves GET /api/tuits/{tid}/likes.
func (h *LikeHandler) HandleListByTuit(w http.ResponseWriter, r *http.Request) {
	likes, err := h.likes.FindUsersThatLikedTuit(r.Context(), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// HandleList serves GET /api/likes.
func (h *LikeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	likes, err := h.likes.FindAllLikes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}
