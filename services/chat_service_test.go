package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"face-chat/domain"
	"face-chat/moderation"
	"face-chat/presence"
)

func newChatService(t *testing.T, registry *presence.Registry) *ChatService {
	t.Helper()
	censor, err := moderation.NewCensor([]string{"troll"}, '*')
	require.NoError(t, err)
	return NewChatService(logs.GetLoggerFromString("INFO"), registry, censor)
}

func TestChatService_Relay_To_The_Senders_Room(t *testing.T) {
	req := require.New(t)
	registry := presence.NewRegistry()
	connectionID := uuid.NewString()
	registry.Put(&domain.Session{ConnectionID: connectionID, Username: "alice", Room: "general"})

	svc := newChatService(t, registry)

	// When a member sends a message
	notifications := svc.Relay(connectionID, "hello there")

	// Then exactly one room-wide message is produced
	req.Len(notifications, 1)
	req.Equal(domain.EventMessage, notifications[0].Event)
	req.Equal(domain.ScopeRoom, notifications[0].Scope)
	req.Equal("general", notifications[0].Target)

	payload := notifications[0].Payload.(domain.MessagePayload)
	req.Equal("alice", payload.Username)
	req.Equal("hello there", payload.Text)
	req.NotEmpty(payload.Time)
}

func TestChatService_Relay_Censors_The_Text(t *testing.T) {
	req := require.New(t)
	registry := presence.NewRegistry()
	connectionID := uuid.NewString()
	registry.Put(&domain.Session{ConnectionID: connectionID, Username: "alice", Room: "general"})

	svc := newChatService(t, registry)

	notifications := svc.Relay(connectionID, "what a troll")

	req.Len(notifications, 1)
	req.Equal("what a *****", notifications[0].Payload.(domain.MessagePayload).Text)
}

func TestChatService_Relay_Drops_Unknown_Connections(t *testing.T) {
	req := require.New(t)
	svc := newChatService(t, presence.NewRegistry())

	// A message from a connection without a session goes nowhere
	req.Empty(svc.Relay(uuid.NewString(), "hello"))
}
