package controllers

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/services"
)

// ChatDirectory is what the chat handlers need from the membership directory.
type ChatDirectory interface {
	CreateChat(createdBy uuid.UUID, in services.CreateChatInput) (*models.Chat, error)
	GetChat(id uint) (*models.Chat, error)
	GetChatsForUser(userID uuid.UUID, role string, skip, limit int) ([]models.Chat, error)
	GetChatByBatch(batchID uint) (*models.Chat, error)
	AddMember(chatID uint, in services.ChatMemberInput) (*models.ChatMember, error)
}

// MessageStore is what the message handlers need from the message store.
type MessageStore interface {
	SendMessage(chatID uint, senderID uuid.UUID, text string, isSystem bool, batchID *uint) (*models.Message, error)
	ListMessages(chatID uint, skip, limit int) ([]models.Message, error)
	MarkRead(messageID uint, userID uuid.UUID, chatID uint) (*models.MessageRead, error)
}

// ResourceGateway is what the resource handlers need from the attachment
// gateway.
type ResourceGateway interface {
	Upload(ctx context.Context, chatID uint, uploaderID uuid.UUID, filename, contentType string, body io.Reader) (*models.ChatResource, error)
	ListResources(chatID uint) ([]models.ChatResource, error)
	ListFiles(ctx context.Context, chatID uint, userID uuid.UUID) ([]services.StorageFile, error)
}
