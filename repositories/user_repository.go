package repositories

import (
	"github.com/google/uuid"

	"github.com/infantleo38/brainx/models"
)

type UserRepository interface {
	FindByID(id uuid.UUID) (models.User, error)
	FindByIDs(ids []uuid.UUID) ([]models.User, error)
}
