package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/infantleo38/brainx/services"
)

type ChatController struct {
	chats    ChatDirectory
	messages MessageStore
}

func NewChatController(chats ChatDirectory, messages MessageStore) *ChatController {
	return &ChatController{chats: chats, messages: messages}
}

// CreateChat creates a chat; the caller becomes its admin member.
func (ctl *ChatController) CreateChat(c *gin.Context) {
	var input services.CreateChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chat, err := ctl.chats.CreateChat(userID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chat})
}

// ListChats lists the caller's chats, newest first.
func (ctl *ChatController) ListChats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	chats, err := ctl.chats.GetChatsForUser(userID, currentRole(c), skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chats})
}

func (ctl *ChatController) GetChat(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	chat, err := ctl.chats.GetChat(chatID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chat})
}

// GetChatByBatch resolves the chat bound to a batch.
func (ctl *ChatController) GetChatByBatch(c *gin.Context) {
	batchID, err := uintParam(c, "batch_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch id"})
		return
	}

	chat, err := ctl.chats.GetChatByBatch(batchID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chat})
}

// AddMember appends a member to an existing chat. Adding an existing member
// returns the current membership unchanged.
func (ctl *ChatController) AddMember(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	var input services.ChatMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := ctl.chats.AddMember(chatID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": member})
}

// SendMessage persists a message and returns it with status "sent".
func (ctl *ChatController) SendMessage(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	var input struct {
		Message         string `json:"message" binding:"required"`
		IsSystemMessage bool   `json:"is_system_message"`
		ChatID          uint   `json:"chat_id"`
		BatchID         *uint  `json:"batch_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ChatID != 0 && input.ChatID != chatID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat id mismatch"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	message, err := ctl.messages.SendMessage(chatID, userID, input.Message, input.IsSystemMessage, input.BatchID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": message})
}

// ListMessages returns a page of messages, newest first, annotated with the
// derived delivery status and read count.
func (ctl *ChatController) ListMessages(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := ctl.messages.ListMessages(chatID, skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": messages})
}

// MarkRead records a read receipt; repeated calls return the same receipt.
func (ctl *ChatController) MarkRead(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}
	messageID, err := uintParam(c, "message_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	receipt, err := ctl.messages.MarkRead(messageID, userID, chatID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": receipt})
}
