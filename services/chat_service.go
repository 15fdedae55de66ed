package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/repositories"
)

// ChatService is the membership directory: it owns chats and their members.
// It answers data questions only; visibility policy is applied on the way out
// via the policy table, and callers enforce membership where they need it.
type ChatService struct {
	ChatRepo  repositories.ChatRepository
	UserRepo  repositories.UserRepository
	BatchRepo repositories.BatchRepository
}

func NewChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository, batchRepo repositories.BatchRepository) *ChatService {
	return &ChatService{
		ChatRepo:  chatRepo,
		UserRepo:  userRepo,
		BatchRepo: batchRepo,
	}
}

type ChatMemberInput struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Role   string    `json:"role" binding:"required,oneof=admin student parent teacher coordinator counselor support"`
	RoleID *uint     `json:"role_id"`
}

type CreateChatInput struct {
	ChatType       string            `json:"chat_type" binding:"required,oneof=direct group"`
	BatchID        *uint             `json:"batch_id"`
	IsOfficial     bool              `json:"is_official"`
	GroupIcon      string            `json:"group_icon"`
	StudentID      *uuid.UUID        `json:"student_id"`
	InitialMembers []ChatMemberInput `json:"initial_members"`
}

// CreateChat persists the chat together with its creator's admin membership
// in one transaction. An initial member that duplicates the creator is
// skipped; the unique (chat_id, user_id) key backs that up at the DB level.
// The batch and every initial member must already exist in their directories.
func (s *ChatService) CreateChat(createdBy uuid.UUID, in CreateChatInput) (*models.Chat, error) {
	if in.BatchID != nil {
		if _, err := s.BatchRepo.FindByID(*in.BatchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBatchNotFound
			}
			return nil, err
		}
	}

	chat := &models.Chat{
		ChatType:   in.ChatType,
		BatchID:    in.BatchID,
		IsOfficial: in.IsOfficial,
		GroupIcon:  in.GroupIcon,
		StudentID:  in.StudentID,
		CreatedBy:  createdBy,
	}

	members := []models.ChatMember{{UserID: createdBy, Role: models.RoleAdmin}}
	var memberIDs []uuid.UUID
	for _, m := range in.InitialMembers {
		if m.UserID == createdBy {
			continue
		}
		members = append(members, models.ChatMember{
			UserID: m.UserID,
			Role:   m.Role,
			RoleID: m.RoleID,
		})
		memberIDs = append(memberIDs, m.UserID)
	}

	if len(memberIDs) > 0 {
		users, err := s.UserRepo.FindByIDs(memberIDs)
		if err != nil {
			return nil, err
		}
		if len(users) != len(memberIDs) {
			return nil, ErrUserNotFound
		}
	}

	if err := s.ChatRepo.Create(chat, members); err != nil {
		return nil, err
	}
	return s.ChatRepo.FindByID(chat.ID)
}

func (s *ChatService) GetChat(id uint) (*models.Chat, error) {
	chat, err := s.ChatRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

// GetChatsForUser lists the caller's chats newest-first. Member lists are
// filtered for callers whose role may not view fellow students; the caller
// always remains visible to themselves.
func (s *ChatService) GetChatsForUser(userID uuid.UUID, role string, skip, limit int) ([]models.Chat, error) {
	chats, err := s.ChatRepo.FindByUser(userID, skip, limit)
	if err != nil {
		return nil, err
	}

	if !Allowed(role, OpViewStudentMembers) {
		for i := range chats {
			visible := chats[i].Members[:0]
			for _, m := range chats[i].Members {
				if m.Role != models.RoleStudent || m.UserID == userID {
					visible = append(visible, m)
				}
			}
			chats[i].Members = visible
		}
	}
	return chats, nil
}

func (s *ChatService) GetChatByBatch(batchID uint) (*models.Chat, error) {
	chat, err := s.ChatRepo.FindByBatch(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return chat, nil
}

// AddMember is idempotent: adding a user who already belongs to the chat
// returns the existing membership. A concurrent duplicate insert loses the
// unique-key race and falls back to the winner's row.
func (s *ChatService) AddMember(chatID uint, in ChatMemberInput) (*models.ChatMember, error) {
	if _, err := s.ChatRepo.FindByID(chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if existing, err := s.ChatRepo.FindMember(chatID, in.UserID); err == nil {
		return existing, nil
	}

	member := &models.ChatMember{
		ChatID: chatID,
		UserID: in.UserID,
		Role:   in.Role,
		RoleID: in.RoleID,
	}
	if err := s.ChatRepo.AddMember(member); err != nil {
		if existing, ferr := s.ChatRepo.FindMember(chatID, in.UserID); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return member, nil
}
