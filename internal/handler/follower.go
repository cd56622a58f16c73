package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/tuiter/internal/service"
)

// FollowerHandler serves follow edges. In the /users/{uid}/following routes
// uid is the follower.
type FollowerHandler struct {
	follows *service.FollowerService
	logger  *slog.Logger
}

func NewFollowerHandler(follows *service.FollowerService, logger *slog.Logger) *FollowerHandler {
	return &FollowerHandler{follows: follows, logger: logger}
}

// HandleFollow serves POST /api/users/{uid}/following/{followee}.
func (h *FollowerHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	f, err := h.follows.UserFollowsUser(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "followee"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// HandleUnfollow serves DELETE /api/users/{uid}/following/{followee}.
func (h *FollowerHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	res, err := h.follows.UserUnfollowsUser(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "followee"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleFollowing serves GET /api/users/{uid}/following.
func (h *FollowerHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	list, err := h.follows.FindFollowing(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleFollowers serves GET /api/users/{uid}/followers.
func (h *FollowerHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	list, err := h.follows.FindFollowers(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleList serves GET /api/followers.
func (h *FollowerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.follows.FindAllFollows(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleTopFollowed serves GET /api/followers/topFollowed.
func (h *FollowerHandler) HandleTopFollowed(w http.ResponseWriter, r *http.Request) {
	top, err := h.follows.FindTopFollowed(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, top)
}
