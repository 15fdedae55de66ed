package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/infantleo38/brainx/models"
	"github.com/infantleo38/brainx/services"
)

type MockResourceGateway struct {
	mock.Mock
}

func (m *MockResourceGateway) Upload(ctx context.Context, chatID uint, uploaderID uuid.UUID, filename, contentType string, body io.Reader) (*models.ChatResource, error) {
	args := m.Called(chatID, uploaderID, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatResource), args.Error(1)
}

func (m *MockResourceGateway) ListResources(chatID uint) ([]models.ChatResource, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatResource), args.Error(1)
}

func (m *MockResourceGateway) ListFiles(ctx context.Context, chatID uint, userID uuid.UUID) ([]services.StorageFile, error) {
	args := m.Called(chatID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.StorageFile), args.Error(1)
}

func setupResourceRouter(ctl *ResourceController, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.GET("/chats/proxy-download", ctl.ProxyDownload)
	r.POST("/chats/:chat_id/resources", ctl.Upload)
	r.GET("/chats/:chat_id/resources", ctl.ListResources)
	r.GET("/chats/:chat_id/resources/files", ctl.ListFiles)
	return r
}

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadNonMemberForbidden(t *testing.T) {
	uploader := uuid.New()
	gateway := new(MockResourceGateway)
	gateway.On("Upload", uint(42), uploader, "notes.pdf").Return(nil, services.ErrNotMember)

	r := setupResourceRouter(NewResourceController(gateway), uploader)
	body, contentType := multipartFile(t, "notes.pdf", "content")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/42/resources", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadStorageFailureMapsInternalError(t *testing.T) {
	uploader := uuid.New()
	gateway := new(MockResourceGateway)
	gateway.On("Upload", uint(42), uploader, "notes.pdf").Return(nil, services.ErrUploadFailed)

	r := setupResourceRouter(NewResourceController(gateway), uploader)
	body, contentType := multipartFile(t, "notes.pdf", "content")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/42/resources", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "file upload failed")
}

func TestUploadMissingFile(t *testing.T) {
	gateway := new(MockResourceGateway)

	r := setupResourceRouter(NewResourceController(gateway), uuid.New())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/42/resources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gateway.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload(t *testing.T) {
	uploader := uuid.New()
	gateway := new(MockResourceGateway)
	gateway.On("Upload", uint(42), uploader, "notes.pdf").Return(&models.ChatResource{
		ID:       1,
		ChatID:   42,
		SenderID: uploader,
		FileName: "notes.pdf",
		FileURL:  "https://cdn.example.com/resources/groups/42/notes.pdf",
	}, nil)

	r := setupResourceRouter(NewResourceController(gateway), uploader)
	body, contentType := multipartFile(t, "notes.pdf", "content")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chats/42/resources", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notes.pdf")
}

func TestProxyDownload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("file bytes"))
	}))
	defer upstream.Close()

	ctl := &ResourceController{resources: new(MockResourceGateway), client: upstream.Client()}
	r := setupResourceRouter(ctl, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/proxy-download?url="+upstream.URL+"/files/report.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "file bytes", w.Body.String())
	assert.Equal(t, `attachment; filename="report.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestProxyDownloadUpstreamMissing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	ctl := &ResourceController{resources: new(MockResourceGateway), client: upstream.Client()}
	r := setupResourceRouter(ctl, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/proxy-download?url="+upstream.URL+"/missing.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "file not found or upstream error")
}

func TestProxyDownloadMissingURL(t *testing.T) {
	ctl := NewResourceController(new(MockResourceGateway))
	r := setupResourceRouter(ctl, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/proxy-download", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilenameFromURL(t *testing.T) {
	cases := []struct {
		rawURL   string
		expected string
	}{
		{"https://cdn.example.com/resources/groups/42/notes.pdf", "notes.pdf"},
		{"https://cdn.example.com/resources/groups/42/my%20notes.pdf", "my notes.pdf"},
		{"https://cdn.example.com/resources/groups/42/notes.pdf?token=abc", "notes.pdf"},
		{"https://cdn.example.com/resources/groups/42/", "downloaded_file"},
		{"https://cdn.example.com", "downloaded_file"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, filenameFromURL(tc.rawURL), tc.rawURL)
	}
}
