package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/infantleo38/brainx/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// Ping period; must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size.
	maxMessageSize = 1024 * 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one live connection scoped to a single chat.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	chatID uint
	send   chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn, chatID uint) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		chatID: chatID,
		send:   make(chan []byte, 256),
	}
}

// inboundFrame is the live-channel payload. The channel is best-effort: a
// frame missing the sender or body is dropped without a response, and the
// persisted store stays the source of truth.
type inboundFrame struct {
	SenderID uuid.UUID `json:"sender_id"`
	Message  string    `json:"message"`
	BatchID  *uint     `json:"batch_id"`
}

// outboundFrame echoes the newly persisted message to every connection.
type outboundFrame struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	SenderID  string `json:"sender_id"`
	ChatID    uint   `json:"chat_id"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// ServeWs upgrades the request and starts the client's pumps.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, chatID uint) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := NewClient(hub, conn, chatID)
	hub.Connect(chatID, client)
	go client.WritePump()
	go client.ReadPump()
	return nil
}

// ReadPump consumes inbound frames: persist first, then broadcast to the
// chat's current connections. Transport errors deregister this connection
// only; they are never escalated to other clients.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Disconnect(c.chatID, c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WebSocket] read error on chat %d: %v", c.chatID, err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}
		if frame.SenderID == uuid.Nil || frame.Message == "" {
			continue
		}

		message, err := c.hub.messages.SendMessage(c.chatID, frame.SenderID, frame.Message, false, frame.BatchID)
		if err != nil {
			log.Printf("[WebSocket] failed to persist message for chat %d: %v", c.chatID, err)
			continue
		}

		payload, err := json.Marshal(outboundFrame{
			ID:        message.ID,
			Message:   message.Message,
			SenderID:  message.SenderID.String(),
			ChatID:    message.ChatID,
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
			Status:    models.StatusSent,
		})
		if err != nil {
			continue
		}
		c.hub.Broadcast(c.chatID, payload)
	}
}

// WritePump flushes the send channel to the connection and keeps the peer
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("[WebSocket] write error on chat %d: %v", c.chatID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
