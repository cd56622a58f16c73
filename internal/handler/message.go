package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/tuiter/internal/service"
)

type MessageHandler struct {
	messages *service.MessageService
	logger   *slog.Logger
}

func NewMessageHandler(messages *service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

type sendMessageRequest struct {
	MessageBody string `json:"messageBody"`
}

// HandleSend serves POST /api/users/{uid}/messages/{id}, where id is the
// receiver.
func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("invalid message JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	msg, err := h.messages.SendMessage(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "id"), req.MessageBody)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// HandleDelete serves DELETE /api/users/{uid}/messages/{id}, where id is
// the message. Only the sender's own messages match.
func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	res, err := h.messages.DeleteMessage(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleSent serves GET /api/users/{uid}/messages/sent.
func (h *MessageHandler) HandleSent(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.FindMessagesSent(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// HandleReceived serves GET /api/users/{uid}/messages/received.
func (h *MessageHandler) HandleReceived(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.FindMessagesReceived(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// HandleRecent serves GET /api/users/{uid}/messages/recent.
func (h *MessageHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.FindRecentMessages(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// HandleList serves GET /api/messages.
func (h *MessageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.FindAllMessages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
