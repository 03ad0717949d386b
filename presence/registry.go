package presence

import (
	"sync"

	"github.com/samber/lo"

	"face-chat/domain"
)

// Registry is the in-memory session store. It owns three indexes that must
// stay consistent under every mutation:
//  1. sessions: connection id -> session
//  2. active:   username -> the single live connection id
//  3. rooms:    room -> member connection ids, in insertion order
//
// Profile image refs are keyed by username, not by connection, so they
// survive leaves, disconnects and evictions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	active   map[string]string
	rooms    map[string][]string
	profiles map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*domain.Session),
		active:   make(map[string]string),
		rooms:    make(map[string][]string),
		profiles: make(map[string]string),
	}
}

// Put inserts or replaces a session by connection id and updates both the
// username index and the room membership. Callers must evict any other
// connection holding the same username first; Put itself never unbinds a
// different connection.
func (r *Registry) Put(session *domain.Session) {
	if session == nil || session.ConnectionID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, ok := r.sessions[session.ConnectionID]; ok {
		r.detachLocked(prior)
	}

	r.sessions[session.ConnectionID] = session
	r.active[session.Username] = session.ConnectionID
	r.rooms[session.Room] = append(r.rooms[session.Room], session.ConnectionID)
}

// RemoveByConnection removes and returns the session bound to a connection,
// clearing both indexes. The username's profile mapping is left untouched.
// Returns nil when the connection has no session.
func (r *Registry) RemoveByConnection(connectionID string) *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[connectionID]
	if !ok {
		return nil
	}
	r.detachLocked(session)
	return session
}

// detachLocked clears every index entry of a session. Callers hold the write lock.
func (r *Registry) detachLocked(session *domain.Session) {
	delete(r.sessions, session.ConnectionID)

	if r.active[session.Username] == session.ConnectionID {
		delete(r.active, session.Username)
	}

	members := r.rooms[session.Room]
	for i, id := range members {
		if id == session.ConnectionID {
			r.rooms[session.Room] = append(members[:i], members[i+1:]...)
			break
		}
	}
	// If no one is left in the room, remove the room entry entirely
	if len(r.rooms[session.Room]) == 0 {
		delete(r.rooms, session.Room)
	}
}

func (r *Registry) FindByConnection(connectionID string) *domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[connectionID]
}

// FindActiveConnection returns the connection id currently bound to a username.
func (r *Registry) FindActiveConnection(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.active[username]
	return id, ok
}

// RoomMembers returns the roster of a room in insertion order. Profile image
// refs are resolved at read time so that a later profile update is reflected
// for already-joined members.
func (r *Registry) RoomMembers(room string) []domain.RoomUser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[room]
	if len(members) == 0 {
		return nil
	}
	sessions := lo.FilterMap(members, func(id string, _ int) (*domain.Session, bool) {
		session, ok := r.sessions[id]
		return session, ok
	})
	return lo.Map(sessions, func(session *domain.Session, _ int) domain.RoomUser {
		return domain.RoomUser{
			Username:     session.Username,
			ProfileImage: r.profiles[session.Username],
		}
	})
}

// RoomConnections returns a copy of the member connection ids of a room.
func (r *Registry) RoomConnections(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[room]
	if len(members) == 0 {
		return nil
	}
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// SetProfile stores the profile image ref for a username, independent of any
// session lifetime. Last write wins.
func (r *Registry) SetProfile(username, ref string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[username] = ref
}

// Profile returns the stored profile image ref for a username.
func (r *Registry) Profile(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.profiles[username]
	return ref, ok
}
