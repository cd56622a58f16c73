package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/service"
)

type TuitHandler struct {
	tuits  *service.TuitService
	logger *slog.Logger
}

func NewTuitHandler(tuits *service.TuitService, logger *slog.Logger) *TuitHandler {
	return &TuitHandler{tuits: tuits, logger: logger}
}

// updateTuitRequest is the PUT body. Only the text can change.
type updateTuitRequest struct {
	Tuit string `json:"tuit"`
}

// HandleList serves GET /api/tuits.
func (h *TuitHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tuits, err := h.tuits.FindAllTuits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tuits)
}

// HandleGet serves GET /api/tuits/{tid}.
func (h *TuitHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tuit, err := h.tuits.FindTuitByID(r.Context(), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tuit)
}

// HandleListByUser serves GET /api/users/{uid}/tuits.
func (h *TuitHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	tuits, err := h.tuits.FindTuitsByUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tuits)
}

// HandleCreate serves POST /api/users/{uid}/tuits.
func (h *TuitHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var tuit model.Tuit
	if err := decodeJSON(w, r, &tuit); err != nil {
		h.logger.Warn("invalid tuit JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	created, err := h.tuits.CreateTuit(r.Context(), chi.URLParam(r, "uid"), &tuit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate serves PUT /api/tuits/{tid}.
func (h *TuitHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTuitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.tuits.UpdateTuit(r.Context(), chi.URLParam(r, "tid"), req.Tuit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleDelete serves DELETE /api/tuits/{tid}.
func (h *TuitHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.tuits.DeleteTuit(r.Context(), chi.URLParam(r, "tid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
