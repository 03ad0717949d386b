package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"face-chat/auth"
	"face-chat/presence"
	"face-chat/services"
)

// Client event names, mirrored by the browser client.
const (
	eventJoinRoom    = "joinRoom"
	eventRejoinRoom  = "rejoinRoom"
	eventChatMessage = "chatMessage"
	eventLeaveRoom   = "leaveRoom"
)

type rejoinPayload struct {
	Username string `json:"username"`
	Room     string `json:"room"`
	// Timestamp is the client's original join time in epoch milliseconds,
	// carried through so the session keeps its pre-refresh age.
	Timestamp int64 `json:"timestamp"`
}

type chatPayload struct {
	Text string `json:"text"`
}

// Router translates inbound transport events into coordinator calls and
// hands the resulting notifications back to the hub. Malformed frames are
// logged and dropped; they must never take the connection down.
type Router struct {
	coordinator *presence.Coordinator
	chat        services.IChatService
	hub         *Hub
	log         *slog.Logger
}

func NewRouter(log *slog.Logger, coordinator *presence.Coordinator, chat services.IChatService, hub *Hub) *Router {
	return &Router{
		coordinator: coordinator,
		chat:        chat,
		hub:         hub,
		log:         log,
	}
}

func (r *Router) HandleFrame(connectionID string, raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		r.log.Warn("Dropping malformed frame", "connection_id", connectionID, "error", err)
		return
	}

	switch envelope.Event {
	case eventJoinRoom:
		r.handleJoin(connectionID, envelope.Data)
	case eventRejoinRoom:
		r.handleRejoin(connectionID, envelope.Data)
	case eventChatMessage:
		r.handleChat(connectionID, envelope.Data)
	case eventLeaveRoom:
		_, notifications := r.coordinator.Leave(connectionID)
		r.hub.Dispatch(notifications)
	default:
		r.log.Debug("Ignoring unknown event", "event", envelope.Event, "connection_id", connectionID)
	}
}

// HandleDisconnect reconciles presence state after an unannounced transport
// loss. Safe to call after an explicit leave: the second removal is a no-op.
func (r *Router) HandleDisconnect(connectionID string) {
	_, notifications := r.coordinator.Disconnect(connectionID)
	r.hub.Unregister(connectionID)
	r.hub.Dispatch(notifications)
}

func (r *Router) handleJoin(connectionID string, data json.RawMessage) {
	var request auth.JoinRequest
	if err := json.Unmarshal(data, &request); err != nil {
		r.log.Warn("Dropping malformed join payload", "connection_id", connectionID, "error", err)
		return
	}
	if err := auth.ValidateJoin(request); err != nil {
		r.log.Warn("Rejecting invalid join", "connection_id", connectionID, "error", err)
		return
	}

	_, notifications, err := r.coordinator.Join(connectionID, request.Username, request.Room)
	if err != nil {
		r.log.Info("Join refused", "connection_id", connectionID, "username", request.Username, "error", err)
	}
	r.hub.Dispatch(notifications)
}

func (r *Router) handleRejoin(connectionID string, data json.RawMessage) {
	var request rejoinPayload
	if err := json.Unmarshal(data, &request); err != nil {
		r.log.Warn("Dropping malformed rejoin payload", "connection_id", connectionID, "error", err)
		return
	}

	var at time.Time
	if request.Timestamp > 0 {
		at = time.UnixMilli(request.Timestamp)
	}

	notifications, err := r.coordinator.Rejoin(connectionID, request.Username, request.Room, at)
	if err != nil {
		r.log.Warn("Rejoin failed", "connection_id", connectionID, "username", request.Username, "error", err)
	}
	r.hub.Dispatch(notifications)
}

func (r *Router) handleChat(connectionID string, data json.RawMessage) {
	var payload chatPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		r.log.Warn("Dropping malformed chat payload", "connection_id", connectionID, "error", err)
		return
	}
	r.hub.Dispatch(r.chat.Relay(connectionID, payload.Text))
}
