// Package domain contains core concepts of the chat system.
// This file defines the Session entity binding a username to a live
// transport connection. No runtime, network, or UI logic lives here.
package domain

import "time"

// Session is one live binding of a username to a transport connection and room.
// A username holds at most one Session at any time; competing connections are
// either rejected (join) or evicted (rejoin).
type Session struct {
	ConnectionID string
	Username     string
	Room         string
	ProfileImage string
	ConnectedAt  time.Time
}

// RoomUser is a single roster entry as exposed to clients.
type RoomUser struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
}
