package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/infantleo38/brainx/websocket"
)

type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// ServeChat upgrades the request to a live connection scoped to one chat.
func (ctl *WebSocketController) ServeChat(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	if err := websocket.ServeWs(ctl.hub, c.Writer, c.Request, chatID); err != nil {
		// Upgrade failures already wrote an HTTP error to the client.
		log.Printf("[WebSocket] upgrade failed for chat %d: %v", chatID, err)
	}
}
