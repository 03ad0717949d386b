package services

import (
	"log/slog"
	"time"

	"face-chat/domain"
	"face-chat/moderation"
	"face-chat/presence"
)

type IChatService interface {
	Relay(connectionID, text string) []domain.Notification
}

// ChatService relays chat messages. A message is routed by looking up the
// sender's session; relaying never mutates presence state.
type ChatService struct {
	registry *presence.Registry
	censor   *moderation.Censor
	log      *slog.Logger
	now      func() time.Time
}

func NewChatService(log *slog.Logger, registry *presence.Registry, censor *moderation.Censor) *ChatService {
	return &ChatService{
		registry: registry,
		censor:   censor,
		log:      log,
		now:      time.Now,
	}
}

// Relay resolves the sender, censors the text and produces one room-wide
// message notification. An unknown connection id (client raced its own
// disconnect) degrades to no notifications at all.
func (s *ChatService) Relay(connectionID, text string) []domain.Notification {
	session := s.registry.FindByConnection(connectionID)
	if session == nil {
		s.log.Debug("Dropping chat message from unknown connection", "connection_id", connectionID)
		return nil
	}

	return []domain.Notification{
		domain.ToRoom(session.Room, domain.EventMessage,
			domain.FormatMessage(session.Username, s.censor.Apply(text), s.now())),
	}
}
