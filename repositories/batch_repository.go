package repositories

import (
	"github.com/infantleo38/brainx/models"
)

type BatchRepository interface {
	FindByID(id uint) (models.Batch, error)
}
