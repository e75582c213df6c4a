package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

type Config struct {
	Port      string
	UploadDir string
	SheetPath string

	TranscribeProvider string
	TranscribeURL      string
	TranscribeTimeout  time.Duration

	ExtractProvider string
	ExtractURL      string
	ExtractTimeout  time.Duration

	OpenAIKey       string
	OpenAIChatModel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		UploadDir: getEnv("UPLOAD_DIR", "uploaded_audios"),
		SheetPath: getEnv("SHEET_PATH", "caracteristicas.xlsx"),

		TranscribeProvider: getEnv("TRANSCRIBE_PROVIDER", "openai"),
		TranscribeURL:      getEnv("TRANSCRIBE_URL", "http://localhost:5000/transcribe"),
		TranscribeTimeout:  getDuration("TRANSCRIBE_TIMEOUT", 90*time.Second),

		ExtractProvider: getEnv("EXTRACT_PROVIDER", "openai"),
		ExtractURL:      getEnv("EXTRACT_URL", "http://localhost:5001/process_text"),
		ExtractTimeout:  getDuration("EXTRACT_TIMEOUT", 60*time.Second),

		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
	}

	// OpenAI key is only required when one of the backends actually uses it
	if cfg.OpenAIKey == "" && (cfg.TranscribeProvider == "openai" || cfg.ExtractProvider == "openai") {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when TRANSCRIBE_PROVIDER or EXTRACT_PROVIDER is 'openai'. Please set it as environment variable:\n  Linux/Mac: export OPENAI_API_KEY=\"your_key\"\n  Windows PowerShell: $env:OPENAI_API_KEY=\"your_key\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[Config] Invalid duration %q for %s, using default %v (use a unit, e.g. \"90s\")", v, key, fallback)
		return fallback
	}
	return d
}
