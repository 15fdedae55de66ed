package impl

import (
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
)

type ResourceRepositoryImpl struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepositoryImpl {
	return &ResourceRepositoryImpl{DB: db}
}

func (r *ResourceRepositoryImpl) Create(resource *models.ChatResource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepositoryImpl) FindByChat(chatID uint) ([]models.ChatResource, error) {
	var resources []models.ChatResource
	err := r.DB.
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}
