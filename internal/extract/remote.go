package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteBackend implements extraction against a standalone service that
// accepts {"transcription": "..."} and answers with the raw semicolon
// delimited field values.
type RemoteBackend struct {
	url    string
	client *http.Client
}

// NewRemoteBackend creates a new remote extraction backend
func NewRemoteBackend(url string) *RemoteBackend {
	return &RemoteBackend{url: url, client: &http.Client{}}
}

// Name returns the backend name
func (b *RemoteBackend) Name() string {
	return "remote"
}

type remoteRequest struct {
	Transcription string `json:"transcription"`
}

// ProcessText posts the transcript and returns the raw response body
func (b *RemoteBackend) ProcessText(ctx context.Context, transcript string) (string, error) {
	payload, err := json.Marshal(remoteRequest{Transcription: transcript})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach extraction service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction service returned status %d: %s", resp.StatusCode, string(raw))
	}
	return string(raw), nil
}
