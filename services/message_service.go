package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/repositories"
)

// MessageService persists messages, derives their delivery status and tracks
// read receipts. Status is computed per request from current membership and
// receipt counts; it is never stored on the message row.
type MessageService struct {
	ChatRepo    repositories.ChatRepository
	MessageRepo repositories.MessageRepository
	ReadRepo    repositories.MessageReadRepository
	UserRepo    repositories.UserRepository
}

func NewMessageService(chatRepo repositories.ChatRepository, messageRepo repositories.MessageRepository, readRepo repositories.MessageReadRepository, userRepo repositories.UserRepository) *MessageService {
	return &MessageService{
		ChatRepo:    chatRepo,
		MessageRepo: messageRepo,
		ReadRepo:    readRepo,
		UserRepo:    userRepo,
	}
}

// DeriveStatus computes the delivery status for a message in a chat with
// total current members and readCount acknowledging readers. The sender is
// counted in total but never self-acknowledges, so total-1 receipts means
// everyone else has read it.
func DeriveStatus(total, readCount int64) string {
	switch {
	case total > 1 && readCount >= total-1:
		return models.StatusRead
	case readCount > 0:
		return models.StatusDelivered
	default:
		return models.StatusSent
	}
}

func (s *MessageService) SendMessage(chatID uint, senderID uuid.UUID, text string, isSystem bool, batchID *uint) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := s.ChatRepo.FindByID(chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	message := &models.Message{
		ChatID:          chatID,
		BatchID:         batchID,
		SenderID:        senderID,
		Message:         text,
		IsSystemMessage: isSystem,
	}
	if err := s.MessageRepo.Create(message); err != nil {
		return nil, err
	}
	message.Status = models.StatusSent
	return message, nil
}

// ListMessages returns a page of a chat's messages newest-first, each
// annotated with its derived status, read count and sender display name.
func (s *MessageService) ListMessages(chatID uint, skip, limit int) ([]models.Message, error) {
	messages, err := s.MessageRepo.FindByChat(chatID, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return messages, nil
	}

	total, err := s.ChatRepo.CountMembers(chatID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(messages))
	for i, m := range messages {
		ids[i] = m.ID
	}
	counts, err := s.MessageRepo.ReadCounts(ids)
	if err != nil {
		return nil, err
	}

	names, err := s.senderNames(messages)
	if err != nil {
		return nil, err
	}

	for i := range messages {
		readCount := counts[messages[i].ID]
		messages[i].ReadCount = readCount
		messages[i].Status = DeriveStatus(total, readCount)
		messages[i].SenderName = names[messages[i].SenderID]
	}
	return messages, nil
}

// MarkRead records that the user has read the message. At most one receipt
// per (message, user): an existing receipt is returned untouched, and losing
// a concurrent duplicate insert falls back to re-fetching the winner's row
// instead of surfacing the conflict.
func (s *MessageService) MarkRead(messageID uint, userID uuid.UUID, chatID uint) (*models.MessageRead, error) {
	if _, err := s.ChatRepo.FindByID(chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	if existing, err := s.ReadRepo.Find(messageID, userID); err == nil {
		return existing, nil
	}

	read := &models.MessageRead{
		MessageID: messageID,
		UserID:    userID,
		ChatID:    chatID,
		Status:    models.StatusRead,
	}
	if err := s.ReadRepo.Create(read); err != nil {
		if existing, ferr := s.ReadRepo.Find(messageID, userID); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return read, nil
}

func (s *MessageService) senderNames(messages []models.Message) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			ids = append(ids, m.SenderID)
		}
	}

	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}
