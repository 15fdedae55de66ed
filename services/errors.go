package services

import "errors"

// Service-level errors. Controllers map these to HTTP status codes; anything
// else is a generic internal failure.
var (
	ErrChatNotFound  = errors.New("chat not found")
	ErrBatchNotFound = errors.New("batch chat not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotMember     = errors.New("not a member of this chat")
	ErrEmptyMessage  = errors.New("message cannot be empty")
	ErrUploadFailed  = errors.New("file upload failed")
)
