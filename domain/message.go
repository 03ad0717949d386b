// Package domain contains core concepts of the chat system.
// This file defines chat messages as delivered to clients.
// Messages are immutable once formatted.
package domain

import "time"

// BotName is the author of every system-generated announcement.
const BotName = "Bot"

const (
	WelcomeText     = "Welcome to Project Discussions!"
	WelcomeBackText = "Welcome back to Project Discussions!"
)

// MessagePayload is a chat message as delivered to clients.
// Time is pre-formatted for direct display.
type MessagePayload struct {
	Username string `json:"username"`
	Text     string `json:"text"`
	Time     string `json:"time"`
}

// FormatMessage stamps a message with a display time ("3:04 PM").
func FormatMessage(author, text string, at time.Time) MessagePayload {
	return MessagePayload{
		Username: author,
		Text:     text,
		Time:     at.Format("3:04 PM"),
	}
}

// JoinedText announces a user entering a room.
func JoinedText(username string) string {
	return username + " has joined the chat"
}

// LeftText announces a user leaving a room.
func LeftText(username string) string {
	return username + " has left the chat"
}
