package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the platform's user directory the chat core needs.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;not null" json:"full_name"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	ProfileImage string    `gorm:"column:profile_image" json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
