package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/repositories"
)

// ResourceService is the attachment gateway: membership-gated upload into the
// external object store plus the persisted resource record.
type ResourceService struct {
	ChatRepo     repositories.ChatRepository
	ResourceRepo repositories.ResourceRepository
	Storage      StorageClient
}

func NewResourceService(chatRepo repositories.ChatRepository, resourceRepo repositories.ResourceRepository, storage StorageClient) *ResourceService {
	return &ResourceService{
		ChatRepo:     chatRepo,
		ResourceRepo: resourceRepo,
		Storage:      storage,
	}
}

// StoragePath keys group uploads by chat id and direct uploads by uploader id.
func StoragePath(chatType string, chatID uint, uploaderID uuid.UUID) string {
	if chatType == models.ChatTypeGroup {
		return fmt.Sprintf("resources/groups/%d", chatID)
	}
	return fmt.Sprintf("resources/direct/%s", uploaderID)
}

// Upload stores the file for the chat and records it as a resource. The
// uploader must be a current member. No row is written unless the byte
// transfer succeeded, so a storage failure leaves no orphan record.
func (s *ResourceService) Upload(ctx context.Context, chatID uint, uploaderID uuid.UUID, filename, contentType string, body io.Reader) (*models.ChatResource, error) {
	chat, err := s.ChatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	member, err := s.ChatRepo.FindMember(chatID, uploaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotMember
		}
		return nil, err
	}
	if !Allowed(member.Role, OpUploadResource) {
		return nil, ErrNotMember
	}

	path := StoragePath(chat.ChatType, chatID, uploaderID)
	fileURL, err := s.Storage.Upload(ctx, path, filename, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	resource := &models.ChatResource{
		ChatID:   chatID,
		SenderID: uploaderID,
		FileURL:  fileURL,
		FileName: filename,
		FileType: contentType,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) ListResources(chatID uint) ([]models.ChatResource, error) {
	if _, err := s.ChatRepo.FindByID(chatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return s.ResourceRepo.FindByChat(chatID)
}

// ListFiles lists the chat's directory in the object store. Members only.
func (s *ResourceService) ListFiles(ctx context.Context, chatID uint, userID uuid.UUID) ([]StorageFile, error) {
	chat, err := s.ChatRepo.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	if _, err := s.ChatRepo.FindMember(chatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotMember
		}
		return nil, err
	}

	return s.Storage.ListFiles(ctx, StoragePath(chat.ChatType, chatID, userID))
}
