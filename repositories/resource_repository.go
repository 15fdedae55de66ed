package repositories

import (
	"github.com/infantleo38/brainx/models"
)

type ResourceRepository interface {
	Create(resource *models.ChatResource) error
	FindByChat(chatID uint) ([]models.ChatResource, error)
}
