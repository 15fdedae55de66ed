package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/services"
)

type MockChatDirectory struct {
	mock.Mock
}

func (m *MockChatDirectory) CreateChat(createdBy uuid.UUID, in services.CreateChatInput) (*models.Chat, error) {
	args := m.Called(createdBy, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatDirectory) GetChat(id uint) (*models.Chat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatDirectory) GetChatsForUser(userID uuid.UUID, role string, skip, limit int) ([]models.Chat, error) {
	args := m.Called(userID, role, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Chat), args.Error(1)
}

func (m *MockChatDirectory) GetChatByBatch(batchID uint) (*models.Chat, error) {
	args := m.Called(batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatDirectory) AddMember(chatID uint, in services.ChatMemberInput) (*models.ChatMember, error) {
	args := m.Called(chatID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMember), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) SendMessage(chatID uint, senderID uuid.UUID, text string, isSystem bool, batchID *uint) (*models.Message, error) {
	args := m.Called(chatID, senderID, text, isSystem, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) ListMessages(chatID uint, skip, limit int) ([]models.Message, error) {
	args := m.Called(chatID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageStore) MarkRead(messageID uint, userID uuid.UUID, chatID uint) (*models.MessageRead, error) {
	args := m.Called(messageID, userID, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessageRead), args.Error(1)
}

func setupChatRouter(chats ChatDirectory, messages MessageStore, userID uuid.UUID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
	})
	ctl := NewChatController(chats, messages)
	r.POST("/chats/", ctl.CreateChat)
	r.GET("/chats/", ctl.ListChats)
	r.GET("/chats/:chat_id", ctl.GetChat)
	r.POST("/chats/:chat_id/members", ctl.AddMember)
	r.POST("/chats/:chat_id/messages", ctl.SendMessage)
	r.GET("/chats/:chat_id/messages", ctl.ListMessages)
	r.POST("/chats/:chat_id/messages/:message_id/read", ctl.MarkRead)
	return r
}

func TestGetChatNotFound(t *testing.T) {
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	chats.On("GetChat", uint(99)).Return(nil, services.ErrChatNotFound)

	r := setupChatRouter(chats, messages, uuid.New(), models.RoleTeacher)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChatBadID(t *testing.T) {
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)

	r := setupChatRouter(chats, messages, uuid.New(), models.RoleTeacher)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	chats.AssertNotCalled(t, "GetChat", mock.Anything)
}

func TestCreateChatValidationRejectsBadType(t *testing.T) {
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)

	r := setupChatRouter(chats, messages, uuid.New(), models.RoleAdmin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/", strings.NewReader(`{"chat_type":"broadcast"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	chats.AssertNotCalled(t, "CreateChat", mock.Anything, mock.Anything)
}

func TestCreateChat(t *testing.T) {
	creator := uuid.New()
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	chats.On("CreateChat", creator, mock.MatchedBy(func(in services.CreateChatInput) bool {
		return in.ChatType == models.ChatTypeGroup
	})).Return(&models.Chat{ID: 5, ChatType: models.ChatTypeGroup}, nil)

	r := setupChatRouter(chats, messages, creator, models.RoleAdmin)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/", strings.NewReader(`{"chat_type":"group"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.Chat `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint(5), body.Data.ID)
}

func TestListChatsPassesPaginationAndRole(t *testing.T) {
	caller := uuid.New()
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	chats.On("GetChatsForUser", caller, models.RoleStudent, 10, 20).Return([]models.Chat{}, nil)

	r := setupChatRouter(chats, messages, caller, models.RoleStudent)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/?skip=10&limit=20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	chats.AssertExpectations(t)
}

func TestSendMessageChatIDMismatch(t *testing.T) {
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)

	r := setupChatRouter(chats, messages, uuid.New(), models.RoleTeacher)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/7/messages", strings.NewReader(`{"message":"hi","chat_id":8}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	messages.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessage(t *testing.T) {
	sender := uuid.New()
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	messages.On("SendMessage", uint(7), sender, "hi", false, (*uint)(nil)).
		Return(&models.Message{ID: 42, ChatID: 7, SenderID: sender, Message: "hi", Status: models.StatusSent}, nil)

	r := setupChatRouter(chats, messages, sender, models.RoleTeacher)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/7/messages", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"sent"`)
}

func TestMarkRead(t *testing.T) {
	reader := uuid.New()
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	messages.On("MarkRead", uint(10), reader, uint(7)).
		Return(&models.MessageRead{ID: 1, MessageID: 10, UserID: reader, ChatID: 7, Status: models.StatusRead}, nil)

	r := setupChatRouter(chats, messages, reader, models.RoleStudent)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/7/messages/10/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"read"`)
}

func TestSendMessageEmptyMapsBadRequest(t *testing.T) {
	chats := new(MockChatDirectory)
	messages := new(MockMessageStore)
	messages.On("SendMessage", uint(7), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, services.ErrEmptyMessage)

	r := setupChatRouter(chats, messages, uuid.New(), models.RoleTeacher)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/7/messages", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
