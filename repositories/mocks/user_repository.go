package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
)

// UserRepository is a testify mock of repositories.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(id uuid.UUID) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) FindByIDs(ids []uuid.UUID) ([]models.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// BatchRepository is a testify mock of repositories.BatchRepository.
type BatchRepository struct {
	mock.Mock
}

func (m *BatchRepository) FindByID(id uint) (models.Batch, error) {
	args := m.Called(id)
	return args.Get(0).(models.Batch), args.Error(1)
}
