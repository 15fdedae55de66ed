package impl

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
)

type MessageRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepositoryImpl {
	return &MessageRepositoryImpl{DB: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.DB.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByChat(chatID uint, skip, limit int) ([]models.Message, error) {
	var messages []models.Message
	query := r.DB.
		Where("chat_id = ?", chatID).
		Order("created_at DESC")

	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) ReadCounts(messageIDs []uint) (map[uint]int64, error) {
	if len(messageIDs) == 0 {
		return map[uint]int64{}, nil
	}

	var rows []struct {
		MessageID uint
		Count     int64
	}
	err := r.DB.Model(&models.MessageRead{}).
		Select("message_id, COUNT(id) AS count").
		Where("message_id IN ?", messageIDs).
		Where("status = ?", models.StatusRead).
		Group("message_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.MessageID] = row.Count
	}
	return counts, nil
}

type MessageReadRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageReadRepository(db *gorm.DB) *MessageReadRepositoryImpl {
	return &MessageReadRepositoryImpl{DB: db}
}

func (r *MessageReadRepositoryImpl) Create(read *models.MessageRead) error {
	return r.DB.Create(read).Error
}

func (r *MessageReadRepositoryImpl) Find(messageID uint, userID uuid.UUID) (*models.MessageRead, error) {
	var read models.MessageRead
	err := r.DB.
		Where("message_id = ? AND user_id = ?", messageID, userID).
		First(&read).Error
	if err != nil {
		return nil, err
	}
	return &read, nil
}
