package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/infantleo38/brainx/services"
)

type ResourceController struct {
	resources ResourceGateway
	client    *http.Client
}

func NewResourceController(resources ResourceGateway) *ResourceController {
	return &ResourceController{
		resources: resources,
		client:    http.DefaultClient,
	}
}

// Upload stores a multipart file as a chat resource. Non-members are
// rejected and a storage failure leaves no resource row behind.
func (ctl *ResourceController) Upload(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	resource, err := ctl.resources.Upload(
		c.Request.Context(),
		chatID,
		userID,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resource})
}

func (ctl *ResourceController) ListResources(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	resources, err := ctl.resources.ListResources(chatID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resources})
}

// ListFiles lists the chat's directory in the object store. Members only.
func (ctl *ResourceController) ListFiles(c *gin.Context) {
	chatID, err := uintParam(c, "chat_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	files, err := ctl.resources.ListFiles(c.Request.Context(), chatID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": files})
}

// ProxyDownload streams a remote file back with a forced-download header so
// the browser saves it instead of opening it.
func (ctl *ResourceController) ProxyDownload(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid url"})
		return
	}

	resp, err := ctl.client.Do(req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found or upstream error"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found or upstream error"})
		return
	}

	c.DataFromReader(
		http.StatusOK,
		resp.ContentLength,
		"application/octet-stream",
		resp.Body,
		map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filenameFromURL(rawURL)),
		},
	)
}

// filenameFromURL derives a download filename from the URL's last path
// segment, URL-decoded, with a generic fallback.
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "downloaded_file"
	}
	segment := parsed.Path[strings.LastIndex(parsed.Path, "/")+1:]
	if segment == "" {
		return "downloaded_file"
	}
	if decoded, err := url.PathUnescape(segment); err == nil && decoded != "" {
		return decoded
	}
	return segment
}
