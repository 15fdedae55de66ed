package impl

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
)

type ChatRepositoryImpl struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepositoryImpl {
	return &ChatRepositoryImpl{DB: db}
}

// Create inserts the chat and all supplied members atomically. Either the
// chat and its creator membership both exist afterwards, or neither does.
func (r *ChatRepositoryImpl) Create(chat *models.Chat, members []models.ChatMember) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].ChatID = chat.ID
			if err := tx.Create(&members[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ChatRepositoryImpl) FindByID(id uint) (*models.Chat, error) {
	var chat models.Chat
	if err := r.DB.First(&chat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	members, err := r.membersOf(chat.ID)
	if err != nil {
		return nil, err
	}
	chat.Members = members
	return &chat, nil
}

func (r *ChatRepositoryImpl) FindByUser(userID uuid.UUID, skip, limit int) ([]models.Chat, error) {
	var chats []models.Chat
	query := r.DB.
		Joins("JOIN chat_members ON chat_members.chat_id = chats.id").
		Where("chat_members.user_id = ?", userID).
		Order("chats.created_at DESC")

	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&chats).Error; err != nil {
		return nil, err
	}

	for i := range chats {
		members, err := r.membersOf(chats[i].ID)
		if err != nil {
			return nil, err
		}
		chats[i].Members = members
	}
	return chats, nil
}

func (r *ChatRepositoryImpl) FindByBatch(batchID uint) (*models.Chat, error) {
	var chat models.Chat
	if err := r.DB.First(&chat, "batch_id = ?", batchID).Error; err != nil {
		return nil, err
	}
	members, err := r.membersOf(chat.ID)
	if err != nil {
		return nil, err
	}
	chat.Members = members
	return &chat, nil
}

func (r *ChatRepositoryImpl) FindMember(chatID uint, userID uuid.UUID) (*models.ChatMember, error) {
	var member models.ChatMember
	err := r.DB.
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *ChatRepositoryImpl) AddMember(member *models.ChatMember) error {
	return r.DB.Create(member).Error
}

func (r *ChatRepositoryImpl) CountMembers(chatID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ChatMember{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error
	return count, err
}

// membersOf lists a chat's members with user name/email annotated from the
// users table. Members are looked up by chat id, never through back-references.
func (r *ChatRepositoryImpl) membersOf(chatID uint) ([]models.ChatMember, error) {
	var members []models.ChatMember
	err := r.DB.Table("chat_members").
		Select("chat_members.*, users.full_name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = chat_members.user_id").
		Where("chat_members.chat_id = ?", chatID).
		Order("chat_members.joined_at ASC").
		Scan(&members).Error
	return members, err
}
