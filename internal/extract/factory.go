package extract

import (
	"fmt"
	"log"

	"mediform/internal/config"
)

// CreateBackend creates an extraction backend based on configuration
func CreateBackend(cfg *config.Config) (Backend, error) {
	switch cfg.ExtractProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		log.Printf("[Extract Factory] Creating OpenAI backend with model: %s", cfg.OpenAIChatModel)
		return NewOpenAIBackend(cfg.OpenAIKey, cfg.OpenAIChatModel), nil
	case "remote":
		if cfg.ExtractURL == "" {
			return nil, fmt.Errorf("EXTRACT_URL is not set")
		}
		log.Printf("[Extract Factory] Creating remote backend: %s", cfg.ExtractURL)
		return NewRemoteBackend(cfg.ExtractURL), nil
	default:
		return nil, fmt.Errorf("unsupported extraction provider: %s. Supported: openai, remote", cfg.ExtractProvider)
	}
}
