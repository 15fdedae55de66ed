package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/infantleo38/brainx/models"
)

// MessageService is the slice of the message store the live channel needs to
// persist inbound frames. Declared here to keep the dependency one-way.
type MessageService interface {
	SendMessage(chatID uint, senderID uuid.UUID, text string, isSystem bool, batchID *uint) (*models.Message, error)
}

// Hub maps chat ids to the set of currently connected clients and delivers
// just-persisted messages to them. It is owned by the server process and
// injected into handlers; registration is per-process only, so a broadcast
// reaches clients on this instance. Multi-instance deployments need an
// external fan-out layer in front of it.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[uint]*room
	messages MessageService
}

// room holds one chat's connection set. Each room has its own lock so
// broadcasts on different chats do not contend.
type room struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

func NewHub(messages MessageService) *Hub {
	return &Hub{
		rooms:    make(map[uint]*room),
		messages: messages,
	}
}

// Connect registers the client under its chat id. The insert happens under
// the hub lock so a concurrent teardown of the room's last client cannot
// strand this client in a room that was already dropped from the map.
func (h *Hub) Connect(chatID uint, c *Client) {
	h.mu.Lock()
	rm, ok := h.rooms[chatID]
	if !ok {
		rm = &room{clients: make(map[*Client]bool)}
		h.rooms[chatID] = rm
	}
	rm.mu.Lock()
	rm.clients[c] = true
	rm.mu.Unlock()
	h.mu.Unlock()
	log.Printf("[WebSocket] client connected to chat %d", chatID)
}

// Disconnect removes the client. Safe to call for a client that was already
// removed.
func (h *Hub) Disconnect(chatID uint, c *Client) {
	h.mu.Lock()
	rm, ok := h.rooms[chatID]
	if !ok {
		h.mu.Unlock()
		return
	}
	rm.mu.Lock()
	if rm.clients[c] {
		delete(rm.clients, c)
		close(c.send)
	}
	empty := len(rm.clients) == 0
	rm.mu.Unlock()
	if empty {
		delete(h.rooms, chatID)
	}
	h.mu.Unlock()
}

// Broadcast delivers the payload to every client registered for the chat at
// the moment of the call. A client whose buffer is full is evicted so the
// rest still receive the payload; clients registering later miss it.
func (h *Hub) Broadcast(chatID uint, payload []byte) {
	h.mu.RLock()
	rm := h.rooms[chatID]
	h.mu.RUnlock()
	if rm == nil {
		return
	}

	rm.mu.Lock()
	for c := range rm.clients {
		select {
		case c.send <- payload:
		default:
			delete(rm.clients, c)
			close(c.send)
			log.Printf("[WebSocket] evicted slow client from chat %d", chatID)
		}
	}
	rm.mu.Unlock()
}

// Close tears down every registered connection. Called on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for chatID, rm := range h.rooms {
		rm.mu.Lock()
		for c := range rm.clients {
			delete(rm.clients, c)
			close(c.send)
		}
		rm.mu.Unlock()
		delete(h.rooms, chatID)
	}
}
