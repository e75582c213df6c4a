package transcribe

import (
	"fmt"
	"log"

	"mediform/internal/config"
)

// CreateBackend creates a speech-to-text backend based on configuration
func CreateBackend(cfg *config.Config) (Backend, error) {
	switch cfg.TranscribeProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		log.Printf("[Transcribe Factory] Creating OpenAI Whisper backend")
		return NewOpenAIBackend(cfg.OpenAIKey), nil
	case "remote":
		if cfg.TranscribeURL == "" {
			return nil, fmt.Errorf("TRANSCRIBE_URL is not set")
		}
		log.Printf("[Transcribe Factory] Creating remote backend: %s", cfg.TranscribeURL)
		return NewRemoteBackend(cfg.TranscribeURL), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s. Supported: openai, remote", cfg.TranscribeProvider)
	}
}
