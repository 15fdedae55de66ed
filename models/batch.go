package models

import "time"

// Batch is the course-batch entity a group chat can be bound to. Batch CRUD
// lives outside the chat core; only the id → chat binding matters here.
type Batch struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	BatchName string    `gorm:"column:batch_name;not null" json:"batch_name"`
	CreatedAt time.Time `json:"created_at"`
}
