// Package domain contains core concepts of the chat system.
// This file defines outbound notification instructions. The coordinator
// produces them as plain values; the transport adapter executes the fan-out.
package domain

// Scope selects which connections a notification is delivered to.
type Scope int

const (
	// ScopeConnection targets a single connection id.
	ScopeConnection Scope = iota
	// ScopeRoom targets every member of a room.
	ScopeRoom
	// ScopeRoomExcept targets every member of a room but one connection.
	ScopeRoomExcept
)

// Notification event names, as consumed by the browser client.
const (
	EventMessage           = "message"
	EventRoomUsers         = "roomUsers"
	EventMultipleLogin     = "multipleLogin"
	EventForceDisconnect   = "forceDisconnect"
	EventRoomRejoinSuccess = "roomRejoinSuccess"
	EventRoomRejoinFailed  = "roomRejoinFailed"
	EventLeaveRoomSuccess  = "leaveRoomSuccess"
)

// Notification is one delivery instruction: which event, to whom.
// Target is a connection id for ScopeConnection, a room name otherwise.
// Exclude is only honoured for ScopeRoomExcept.
type Notification struct {
	Event   string
	Scope   Scope
	Target  string
	Exclude string
	Payload any
}

// RoomUsersPayload is the roster broadcast after every membership change.
type RoomUsersPayload struct {
	Room  string     `json:"room"`
	Users []RoomUser `json:"users"`
}

// InfoPayload carries a human-readable reason for login conflicts and evictions.
type InfoPayload struct {
	Message string `json:"message"`
}

// ToConnection builds a single-connection notification.
func ToConnection(connectionID, event string, payload any) Notification {
	return Notification{Event: event, Scope: ScopeConnection, Target: connectionID, Payload: payload}
}

// ToRoom builds a whole-room notification.
func ToRoom(room, event string, payload any) Notification {
	return Notification{Event: event, Scope: ScopeRoom, Target: room, Payload: payload}
}

// ToRoomExcept builds a room notification skipping one connection.
func ToRoomExcept(room, exclude, event string, payload any) Notification {
	return Notification{Event: event, Scope: ScopeRoomExcept, Target: room, Exclude: exclude, Payload: payload}
}
