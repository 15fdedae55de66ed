package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
)

// ChatRepository is a testify mock of repositories.ChatRepository.
type ChatRepository struct {
	mock.Mock
}

func (m *ChatRepository) Create(chat *models.Chat, members []models.ChatMember) error {
	args := m.Called(chat, members)
	return args.Error(0)
}

func (m *ChatRepository) FindByID(id uint) (*models.Chat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *ChatRepository) FindByUser(userID uuid.UUID, skip, limit int) ([]models.Chat, error) {
	args := m.Called(userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *ChatRepository) FindByBatch(batchID uint) (*models.Chat, error) {
	args := m.Called(batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *ChatRepository) FindMember(chatID uint, userID uuid.UUID) (*models.ChatMember, error) {
	args := m.Called(chatID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMember), args.Error(1)
}

func (m *ChatRepository) AddMember(member *models.ChatMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *ChatRepository) CountMembers(chatID uint) (int64, error) {
	args := m.Called(chatID)
	return args.Get(0).(int64), args.Error(1)
}
