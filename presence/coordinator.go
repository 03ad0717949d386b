// Package presence tracks which username is connected through which
// transport connection, in which room, and enforces a single global rule:
// at most one live connection per username.
package presence

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"face-chat/domain"
	"face-chat/errors"
)

const (
	alreadyActiveMessage  = "This user is already logged in on another device."
	forceDisconnectReason = "Your account has been logged in from another device."
)

// Coordinator drives join / rejoin / leave / disconnect / eviction against
// the registry. Every mutating operation runs as one critical section, so
// concurrent transport events apply to the registry as if totally ordered.
// Operations return the value outcome plus the list of notifications the
// transport must deliver; the coordinator never touches the network itself.
type Coordinator struct {
	mu       sync.Mutex
	registry *Registry
	log      *slog.Logger
	now      func() time.Time
}

func NewCoordinator(log *slog.Logger, registry *Registry) *Coordinator {
	return &Coordinator{
		registry: registry,
		log:      log,
		now:      time.Now,
	}
}

// Join admits a connection into a room under a username.
//
// Guard: a second connection must never silently hijack or duplicate a
// username's membership. If the username is already bound to a different
// connection, nothing is mutated and the caller gets ErrUserAlreadyActive
// plus a multipleLogin notification addressed to the joining connection.
func (c *Coordinator) Join(connectionID, username, room string) (*domain.Session, []domain.Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.registry.FindActiveConnection(username); ok && existing != connectionID {
		c.log.Warn("Join rejected, username already active",
			"username", username, "existing_connection", existing)
		return nil, []domain.Notification{
			domain.ToConnection(connectionID, domain.EventMultipleLogin,
				domain.InfoPayload{Message: alreadyActiveMessage}),
		}, errors.ErrUserAlreadyActive
	}

	session := c.admitLocked(connectionID, username, room, c.now())

	notifications := []domain.Notification{
		domain.ToConnection(connectionID, domain.EventMessage,
			domain.FormatMessage(domain.BotName, domain.WelcomeText, c.now())),
		domain.ToRoomExcept(room, connectionID, domain.EventMessage,
			domain.FormatMessage(domain.BotName, domain.JoinedText(username), c.now())),
		c.rosterLocked(room),
	}
	return session, notifications, nil
}

// Rejoin resumes room membership for a client reconnecting after a page
// reload. Unlike Join, an existing session under the same username is not a
// conflict but a stale session to reap: it is evicted before the new
// connection is admitted, and the old connection gets a forceDisconnect
// notification in case it is still reachable. With no prior session this
// behaves like a fresh join, whatever the room value.
//
// Any panic below this boundary is converted into ErrRejoinFailed; the
// registry is never left half-mutated because eviction and admission each
// complete atomically.
func (c *Coordinator) Rejoin(connectionID, username, room string, at time.Time) (notifications []domain.Notification, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Rejoin panic recovered", "username", username, "cause", r)
			notifications = []domain.Notification{
				domain.ToConnection(connectionID, domain.EventRoomRejoinFailed, nil),
			}
			err = fmt.Errorf("%w: %v", errors.ErrRejoinFailed, r)
		}
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	if username == "" || room == "" {
		return []domain.Notification{
			domain.ToConnection(connectionID, domain.EventRoomRejoinFailed, nil),
		}, fmt.Errorf("%w: %v", errors.ErrRejoinFailed, errors.ErrMissingRoom)
	}

	if evicted, ok := c.evictLocked(username); ok && evicted != connectionID {
		c.log.Info("Evicting stale session on rejoin",
			"username", username, "stale_connection", evicted)
		notifications = append(notifications,
			domain.ToConnection(evicted, domain.EventForceDisconnect,
				domain.InfoPayload{Message: forceDisconnectReason}))
	}

	if at.IsZero() {
		at = c.now()
	}
	c.admitLocked(connectionID, username, room, at)

	notifications = append(notifications,
		domain.ToConnection(connectionID, domain.EventRoomRejoinSuccess, nil),
		domain.ToConnection(connectionID, domain.EventMessage,
			domain.FormatMessage(domain.BotName, domain.WelcomeBackText, c.now())),
		c.rosterLocked(room),
	)
	return notifications, nil
}

// Leave handles an explicit, user-initiated exit. The username's profile
// mapping stays intact. A connection without a session is a no-op: nil
// session, no notifications.
func (c *Coordinator) Leave(connectionID string) (*domain.Session, []domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := c.registry.RemoveByConnection(connectionID)
	if session == nil {
		return nil, nil
	}
	return session, []domain.Notification{
		domain.ToRoom(session.Room, domain.EventMessage,
			domain.FormatMessage(domain.BotName, domain.LeftText(session.Username), c.now())),
		c.rosterLocked(session.Room),
		domain.ToConnection(connectionID, domain.EventLeaveRoomSuccess, nil),
	}
}

// Disconnect handles an abrupt transport-level loss. Removal semantics match
// Leave, minus the acknowledgment; a second call for the same connection is
// a no-op.
func (c *Coordinator) Disconnect(connectionID string) (*domain.Session, []domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session := c.registry.RemoveByConnection(connectionID)
	if session == nil {
		return nil, nil
	}
	return session, []domain.Notification{
		domain.ToRoom(session.Room, domain.EventMessage,
			domain.FormatMessage(domain.BotName, domain.LeftText(session.Username), c.now())),
		c.rosterLocked(session.Room),
	}
}

// ForceEvict unconditionally removes the session of a username and returns
// the evicted connection id. The profile mapping is untouched.
func (c *Coordinator) ForceEvict(username string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictLocked(username)
}

// IsActive reports whether a username currently holds a live connection.
func (c *Coordinator) IsActive(username string) bool {
	_, ok := c.registry.FindActiveConnection(username)
	return ok
}

// UpdateProfile stores a profile image ref for a username. It does not need
// an active session: face authentication resolves the image before the user
// ever joins a room. An empty ref is rejected without mutation.
func (c *Coordinator) UpdateProfile(username, ref string) bool {
	if username == "" || ref == "" {
		return false
	}
	c.registry.SetProfile(username, ref)
	return true
}

// RoomUsers returns the current roster of a room.
func (c *Coordinator) RoomUsers(room string) []domain.RoomUser {
	return c.registry.RoomMembers(room)
}

func (c *Coordinator) admitLocked(connectionID, username, room string, at time.Time) *domain.Session {
	profile, _ := c.registry.Profile(username)
	session := &domain.Session{
		ConnectionID: connectionID,
		Username:     username,
		Room:         room,
		ProfileImage: profile,
		ConnectedAt:  at,
	}
	c.registry.Put(session)
	return session
}

func (c *Coordinator) evictLocked(username string) (string, bool) {
	connectionID, ok := c.registry.FindActiveConnection(username)
	if !ok {
		return "", false
	}
	c.registry.RemoveByConnection(connectionID)
	return connectionID, true
}

func (c *Coordinator) rosterLocked(room string) domain.Notification {
	return domain.ToRoom(room, domain.EventRoomUsers, domain.RoomUsersPayload{
		Room:  room,
		Users: c.registry.RoomMembers(room),
	})
}
