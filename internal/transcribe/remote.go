package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// RemoteBackend implements speech-to-text against a standalone transcription
// service that accepts a multipart file upload and answers
// {"transcription": "..."}.
type RemoteBackend struct {
	url    string
	client *http.Client
}

// NewRemoteBackend creates a new remote transcription backend
func NewRemoteBackend(url string) *RemoteBackend {
	return &RemoteBackend{url: url, client: &http.Client{}}
}

// Name returns the backend name
func (b *RemoteBackend) Name() string {
	return "remote"
}

type remoteResponse struct {
	Transcription string `json:"transcription"`
	Error         string `json:"error,omitempty"`
}

// Transcribe uploads the stored audio file and returns the transcript
func (b *RemoteBackend) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach transcription service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription service returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed remoteResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse transcription response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("transcription service error: %s", parsed.Error)
	}
	return parsed.Transcription, nil
}
