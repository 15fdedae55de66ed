package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
)

// ResourceRepository is a testify mock of repositories.ResourceRepository.
type ResourceRepository struct {
	mock.Mock
}

func (m *ResourceRepository) Create(resource *models.ChatResource) error {
	args := m.Called(resource)
	return args.Error(0)
}

func (m *ResourceRepository) FindByChat(chatID uint) ([]models.ChatResource, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatResource), args.Error(1)
}
