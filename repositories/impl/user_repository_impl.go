package impl

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
)

type UserRepositoryImpl struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{DB: db}
}

func (r *UserRepositoryImpl) FindByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.DB.First(&user, "id = ?", id).Error
	return user, err
}

func (r *UserRepositoryImpl) FindByIDs(ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.DB.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

type BatchRepositoryImpl struct {
	DB *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepositoryImpl {
	return &BatchRepositoryImpl{DB: db}
}

func (r *BatchRepositoryImpl) FindByID(id uint) (models.Batch, error) {
	var batch models.Batch
	err := r.DB.First(&batch, "id = ?", id).Error
	return batch, err
}
