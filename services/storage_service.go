package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StorageClient is the object-storage capability the chat core depends on:
// put bytes at a path and get back a public URL, or list what lives under a
// path. The production implementation talks to Bunny Storage.
type StorageClient interface {
	Upload(ctx context.Context, path, filename, contentType string, body io.Reader) (string, error)
	ListFiles(ctx context.Context, path string) ([]StorageFile, error)
}

// StorageFile mirrors the fields Bunny returns for a directory listing that
// the API exposes to clients.
type StorageFile struct {
	ObjectName      string `json:"ObjectName"`
	Length          int64  `json:"Length"`
	IsDirectory     bool   `json:"IsDirectory"`
	ContentType     string `json:"ContentType"`
	LastChanged     string `json:"LastChanged"`
	DateCreated     string `json:"DateCreated"`
	StorageZoneName string `json:"StorageZoneName"`
	Path            string `json:"Path"`
}

// BunnyStorage implements StorageClient against the Bunny Storage HTTP API.
type BunnyStorage struct {
	apiKey  string
	baseURL string
	cdnURL  string
	client  *http.Client
}

// NewBunnyStorage builds a client for the given storage zone. The region
// selects the storage endpoint host; "de" (or empty) is the main endpoint.
func NewBunnyStorage(apiKey, storageZone, region, cdnURL string) *BunnyStorage {
	region = strings.ToLower(region)
	var baseURL string
	if region == "" || region == "de" {
		baseURL = fmt.Sprintf("https://storage.bunnycdn.com/%s", storageZone)
	} else {
		baseURL = fmt.Sprintf("https://%s.storage.bunnycdn.com/%s", region, storageZone)
	}
	return &BunnyStorage{
		apiKey:  apiKey,
		baseURL: baseURL,
		cdnURL:  strings.TrimRight(cdnURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload puts the file at path/filename and returns its public CDN URL.
func (b *BunnyStorage) Upload(ctx context.Context, path, filename, contentType string, body io.Reader) (string, error) {
	key := strings.Trim(path, "/") + "/" + filename

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.baseURL+"/"+key, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("AccessKey", b.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage upload returned %d: %s", resp.StatusCode, msg)
	}
	return b.cdnURL + "/" + key, nil
}

// ListFiles lists the objects under a directory path. A missing directory is
// an empty listing, not an error.
func (b *BunnyStorage) ListFiles(ctx context.Context, path string) ([]StorageFile, error) {
	dir := strings.Trim(path, "/") + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/"+dir, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("AccessKey", b.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []StorageFile{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("storage list returned %d: %s", resp.StatusCode, msg)
	}

	var files []StorageFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return nil, err
	}
	return files, nil
}
