package extract

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements extraction using the OpenAI chat completion API
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates a new OpenAI extraction backend
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIBackend{client: openai.NewClient(apiKey), model: model}
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// ProcessText sends the extraction instruction and transcript to the model
func (b *OpenAIBackend) ProcessText(ctx context.Context, transcript string) (string, error) {
	systemPrompt, userPrompt := BuildPrompt(transcript)

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		Temperature: 0.7,
		TopP:        1.0,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
