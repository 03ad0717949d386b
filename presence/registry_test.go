package presence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"face-chat/domain"
)

func newSession(connectionID, username, room string) *domain.Session {
	return &domain.Session{
		ConnectionID: connectionID,
		Username:     username,
		Room:         room,
		ConnectedAt:  time.Now().UTC(),
	}
}

func TestRegistry_Put_One_Room_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given an empty registry
	req.Nil(registry.FindByConnection(connectionID))

	// When a session is stored
	registry.Put(newSession(connectionID, "alice", "general"))

	// Then every index resolves it
	req.NotNil(registry.FindByConnection(connectionID))

	active, ok := registry.FindActiveConnection("alice")
	req.True(ok)
	req.Equal(connectionID, active)

	req.Equal([]domain.RoomUser{{Username: "alice"}}, registry.RoomMembers("general"))
	req.Equal([]string{connectionID}, registry.RoomConnections("general"))
}

func TestRegistry_Put_Replaces_By_ConnectionID(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given a session in one room
	registry.Put(newSession(connectionID, "alice", "general"))

	// When the same connection is stored again under another room
	registry.Put(newSession(connectionID, "alice", "random"))

	// Then the old room membership is gone
	req.Nil(registry.RoomMembers("general"))
	req.Equal([]domain.RoomUser{{Username: "alice"}}, registry.RoomMembers("random"))

	active, ok := registry.FindActiveConnection("alice")
	req.True(ok)
	req.Equal(connectionID, active)
}

func TestRegistry_RoomMembers_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When three users join the same room in sequence
	registry.Put(newSession(uuid.NewString(), "alice", "general"))
	registry.Put(newSession(uuid.NewString(), "bob", "general"))
	registry.Put(newSession(uuid.NewString(), "carol", "general"))

	// Then the roster preserves join order
	users := registry.RoomMembers("general")
	req.Len(users, 3)
	req.Equal("alice", users[0].Username)
	req.Equal("bob", users[1].Username)
	req.Equal("carol", users[2].Username)
}

func TestRegistry_RemoveByConnection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	other := uuid.NewString()

	// Given two sessions in one room
	registry.Put(newSession(connectionID, "alice", "general"))
	registry.Put(newSession(other, "bob", "general"))

	// When one connection is removed
	removed := registry.RemoveByConnection(connectionID)

	// Then the prior session is returned and only the other remains
	req.NotNil(removed)
	req.Equal("alice", removed.Username)

	_, ok := registry.FindActiveConnection("alice")
	req.False(ok)
	req.Equal([]domain.RoomUser{{Username: "bob"}}, registry.RoomMembers("general"))

	// And removing it again is a no-op
	req.Nil(registry.RemoveByConnection(connectionID))
}

func TestRegistry_Remove_Last_Member_Drops_The_Room(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given a single-member room
	registry.Put(newSession(connectionID, "alice", "general"))

	// When the member leaves
	registry.RemoveByConnection(connectionID)

	// Then the room entry is gone entirely
	req.Nil(registry.RoomMembers("general"))
	req.Nil(registry.RoomConnections("general"))
}

func TestRegistry_Profile_Survives_Session_Removal(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// Given a stored profile ref and a live session
	registry.SetProfile("alice", "/profile_images/alice")
	registry.Put(newSession(connectionID, "alice", "general"))

	// Then the roster resolves the ref at read time
	users := registry.RoomMembers("general")
	req.Equal("/profile_images/alice", users[0].ProfileImage)

	// When the session is removed
	registry.RemoveByConnection(connectionID)

	// Then the profile mapping is untouched
	ref, ok := registry.Profile("alice")
	req.True(ok)
	req.Equal("/profile_images/alice", ref)
}

func TestRegistry_Profile_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.SetProfile("alice", "ref1")
	registry.SetProfile("alice", "ref2")

	ref, ok := registry.Profile("alice")
	req.True(ok)
	req.Equal("ref2", ref)
}
