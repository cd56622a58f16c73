package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

type MessageService struct {
	messages repository.MessageRepository
	logger   *slog.Logger
}

func NewMessageService(messages repository.MessageRepository, logger *slog.Logger) *MessageService {
	return &MessageService{messages: messages, logger: logger}
}

// SendMessage stores a message from sender to receiver. The body must be
// non-empty after trimming.
func (s *MessageService) SendMessage(ctx context.Context, sender, receiver, body string) (*model.Message, error) {
	msg := &model.Message{
		Sender:      strings.TrimSpace(sender),
		Receiver:    strings.TrimSpace(receiver),
		MessageBody: strings.TrimSpace(body),
	}
	if err := validateStruct(msg); err != nil {
		return nil, err
	}

	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("failed to send message",
			slog.String("sender", msg.Sender),
			slog.String("receiver", msg.Receiver),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("sending message: %w", err)
	}
	s.logger.Info("message sent",
		slog.String("id", msg.ID),
		slog.String("sender", msg.Sender),
		slog.String("receiver", msg.Receiver),
	)
	return msg, nil
}

// DeleteMessage removes mid only if sender sent it. Someone else's message
// yields a zero count.
func (s *MessageService) DeleteMessage(ctx context.Context, sender, mid string) (model.DeleteResult, error) {
	ids, err := requireIDs("uid", sender, "mid", mid)
	if err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.messages.DeleteMessage(ctx, ids[0], ids[1])
	if err != nil {
		s.logger.Error("failed to delete message", slog.String("id", ids[1]), slog.String("error", err.Error()))
		return model.DeleteResult{}, fmt.Errorf("deleting message: %w", err)
	}
	s.logger.Info("message deleted", slog.String("id", ids[1]), slog.Int64("deleted", n))
	return model.DeleteResult{DeletedCount: n}, nil
}

func (s *MessageService) FindMessagesSent(ctx context.Context, uid string) ([]model.Message, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.messages.ListMessagesSent(ctx, uid))
}

func (s *MessageService) FindMessagesReceived(ctx context.Context, uid string) ([]model.Message, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.messages.ListMessagesReceived(ctx, uid))
}

// FindRecentMessages returns the newest repository.RecentMessagesLimit
// messages uid received.
func (s *MessageService) FindRecentMessages(ctx context.Context, uid string) ([]model.Message, error) {
	uid, err := requireID("uid", uid)
	if err != nil {
		return nil, err
	}
	return s.list(s.messages.ListRecentMessagesReceived(ctx, uid, repository.RecentMessagesLimit))
}

func (s *MessageService) FindAllMessages(ctx context.Context) ([]model.Message, error) {
	return s.list(s.messages.ListMessages(ctx))
}

func (s *MessageService) list(msgs []model.Message, err error) ([]model.Message, error) {
	if err != nil {
		s.logger.Error("failed to list messages", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}
