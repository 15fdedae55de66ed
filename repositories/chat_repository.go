package repositories

import (
	"github.com/google/uuid"

	"github.com/infantleo38/brainx/models"
)

type ChatRepository interface {
	// Create persists the chat and its members in a single transaction.
	Create(chat *models.Chat, members []models.ChatMember) error
	FindByID(id uint) (*models.Chat, error)
	FindByUser(userID uuid.UUID, skip, limit int) ([]models.Chat, error)
	FindByBatch(batchID uint) (*models.Chat, error)
	FindMember(chatID uint, userID uuid.UUID) (*models.ChatMember, error)
	AddMember(member *models.ChatMember) error
	CountMembers(chatID uint) (int64, error)
}
