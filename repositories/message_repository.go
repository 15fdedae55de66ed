package repositories

import (
	"github.com/google/uuid"

	"github.com/infantleo38/brainx/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByChat(chatID uint, skip, limit int) ([]models.Message, error)
	// ReadCounts returns the number of receipts with status "read" per
	// message id, for the given ids.
	ReadCounts(messageIDs []uint) (map[uint]int64, error)
}

type MessageReadRepository interface {
	Create(read *models.MessageRead) error
	Find(messageID uint, userID uuid.UUID) (*models.MessageRead, error)
}
