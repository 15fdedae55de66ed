package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/infantleo38/brainx/services"
)

// currentUser pulls the resolved caller identity set by the auth middleware.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func currentRole(c *gin.Context) string {
	v, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}

func uintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// statusForError maps service errors onto the HTTP surface. Conflicts never
// reach this point; they are recovered inside the services.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrChatNotFound), errors.Is(err, services.ErrBatchNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotMember):
		return http.StatusForbidden
	case errors.Is(err, services.ErrEmptyMessage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		// Upstream detail stays in the logs, not in the response.
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
