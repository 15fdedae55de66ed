package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat kinds and the member role set used across the platform.
const (
	ChatTypeDirect = "direct"
	ChatTypeGroup  = "group"

	RoleAdmin       = "admin"
	RoleStudent     = "student"
	RoleParent      = "parent"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
	RoleCounselor   = "counselor"
	RoleSupport     = "support"
)

// Delivery-status tags. Receipts are only ever stored with StatusRead;
// sent/delivered are derived at query time from receipt counts.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// Chat is a direct (two-party) or group (batch-bound) conversation container.
type Chat struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	ChatType   string     `gorm:"column:chat_type;type:varchar(10);not null" json:"chat_type"`
	BatchID    *uint      `gorm:"column:batch_id" json:"batch_id,omitempty"`
	IsOfficial bool       `gorm:"column:is_official;default:false" json:"is_official"`
	GroupIcon  string     `gorm:"column:group_icon" json:"group_icon,omitempty"`
	StudentID  *uuid.UUID `gorm:"column:student_id;type:uuid" json:"student_id,omitempty"`
	CreatedBy  uuid.UUID  `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`

	// Owning associations. Declared here so the migration emits the CASCADE
	// constraints; child rows never point back at the chat.
	Members   []ChatMember   `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"members"`
	Messages  []Message      `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
	Resources []ChatResource `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
}

// ChatMember binds a user to a chat with a role. A user belongs to a chat at
// most once, enforced by the unique (chat_id, user_id) index.
type ChatMember struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	ChatID   uint      `gorm:"column:chat_id;not null;uniqueIndex:idx_chat_member" json:"chat_id"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_chat_member" json:"user_id"`
	RoleID   *uint     `gorm:"column:role_id" json:"role_id,omitempty"`
	Role     string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`

	// Annotated from the users table when members are listed; not stored here.
	UserName  string `gorm:"->;-:migration" json:"user_name,omitempty"`
	UserEmail string `gorm:"->;-:migration" json:"user_email,omitempty"`
}

// Message is immutable once created; there is no edit or delete path.
type Message struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	ChatID          uint      `gorm:"column:chat_id;not null;index" json:"chat_id"`
	BatchID         *uint     `gorm:"column:batch_id" json:"batch_id,omitempty"`
	SenderID        uuid.UUID `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	Message         string    `gorm:"column:message;type:text;not null" json:"message"`
	IsSystemMessage bool      `gorm:"column:is_system_message;default:false" json:"is_system_message"`
	CreatedAt       time.Time `json:"created_at"`

	Reads []MessageRead `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"-"`

	// Derived per request; membership and receipts change independently of
	// message content, so none of this is persisted on the row.
	SenderName string `gorm:"-" json:"sender_name,omitempty"`
	Status     string `gorm:"-" json:"status"`
	ReadCount  int64  `gorm:"-" json:"read_count"`
}

// MessageRead records that a user has read a message. At most one receipt per
// (message_id, user_id); rows are created once and never updated.
type MessageRead struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MessageID uint      `gorm:"column:message_id;not null;uniqueIndex:idx_message_reader" json:"message_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_message_reader" json:"user_id"`
	ChatID    uint      `gorm:"column:chat_id;not null;index" json:"chat_id"`
	ReadAt    time.Time `gorm:"column:read_at;autoCreateTime" json:"read_at"`
	Status    string    `gorm:"column:status;type:varchar(10);default:'read'" json:"status"`
}

// ChatResource is an append-only file attachment stored externally and
// referenced by URL.
type ChatResource struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ChatID    uint      `gorm:"column:chat_id;not null;index" json:"chat_id"`
	SenderID  uuid.UUID `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	FileURL   string    `gorm:"column:file_url;not null" json:"file_url"`
	FileName  string    `gorm:"column:file_name;not null" json:"file_name"`
	FileType  string    `gorm:"column:file_type" json:"file_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
