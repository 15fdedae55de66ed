package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
)

// MessageRepository is a testify mock of repositories.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MessageRepository) FindByChat(chatID uint, skip, limit int) ([]models.Message, error) {
	args := m.Called(chatID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MessageRepository) ReadCounts(messageIDs []uint) (map[uint]int64, error) {
	args := m.Called(messageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

// MessageReadRepository is a testify mock of repositories.MessageReadRepository.
type MessageReadRepository struct {
	mock.Mock
}

func (m *MessageReadRepository) Create(read *models.MessageRead) error {
	args := m.Called(read)
	return args.Error(0)
}

func (m *MessageReadRepository) Find(messageID uint, userID uuid.UUID) (*models.MessageRead, error) {
	args := m.Called(messageID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessageRead), args.Error(1)
}
