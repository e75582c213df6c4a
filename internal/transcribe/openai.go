package transcribe

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements speech-to-text using the OpenAI Whisper API
type OpenAIBackend struct {
	client *openai.Client
}

// NewOpenAIBackend creates a new OpenAI Whisper backend
func NewOpenAIBackend(apiKey string) *OpenAIBackend {
	return &OpenAIBackend{client: openai.NewClient(apiKey)}
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Transcribe sends the stored audio file to the Whisper API
func (b *OpenAIBackend) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := b.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
