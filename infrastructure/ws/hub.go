// Package ws is the room broadcast adapter: it owns the websocket
// connections and executes the delivery instructions produced by the
// presence coordinator. It never decides who should be notified; room
// membership is resolved against the presence registry at dispatch time.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"face-chat/domain"
)

// RoomDirectory resolves a room name into its member connection ids.
// The presence registry satisfies it.
type RoomDirectory interface {
	RoomConnections(room string) []string
}

// Envelope is the wire frame for every event in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   RoomDirectory
	log     *slog.Logger
}

func NewHub(log *slog.Logger, rooms RoomDirectory) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   rooms,
		log:     log,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	total := len(h.clients)
	h.mu.Unlock()
	h.log.Info("Connection registered", "connection_id", client.ID, "total", total)
}

func (h *Hub) Unregister(connectionID string) {
	h.mu.Lock()
	client, ok := h.clients[connectionID]
	if ok {
		delete(h.clients, connectionID)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		client.close()
		h.log.Info("Connection unregistered", "connection_id", connectionID, "total", total)
	}
}

// Dispatch executes a batch of delivery instructions. Unknown targets are
// skipped: an evicted connection may already be gone from the transport.
func (h *Hub) Dispatch(notifications []domain.Notification) {
	for _, n := range notifications {
		frame, err := encodeFrame(n)
		if err != nil {
			h.log.Error("Dropping unencodable notification", "event", n.Event, "error", err)
			continue
		}

		switch n.Scope {
		case domain.ScopeConnection:
			h.send(n.Target, frame)
		case domain.ScopeRoom:
			for _, id := range h.rooms.RoomConnections(n.Target) {
				h.send(id, frame)
			}
		case domain.ScopeRoomExcept:
			for _, id := range h.rooms.RoomConnections(n.Target) {
				if id != n.Exclude {
					h.send(id, frame)
				}
			}
		}
	}
}

// Shutdown closes every live connection, used during graceful stop.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()

	for _, client := range clients {
		client.close()
	}
}

func (h *Hub) send(connectionID string, frame []byte) {
	h.mu.RLock()
	client := h.clients[connectionID]
	h.mu.RUnlock()
	if client == nil {
		return
	}

	select {
	case client.send <- frame:
	default:
		// Slow consumer: drop the frame rather than block every other delivery.
		h.log.Warn("Send buffer full, dropping frame", "connection_id", connectionID)
	}
}

func encodeFrame(n domain.Notification) ([]byte, error) {
	envelope := Envelope{Event: n.Event}
	if n.Payload != nil {
		data, err := json.Marshal(n.Payload)
		if err != nil {
			return nil, err
		}
		envelope.Data = data
	}
	return json.Marshal(envelope)
}
