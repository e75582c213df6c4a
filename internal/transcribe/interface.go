package transcribe

import "context"

// Backend defines the interface for speech-to-text backends
type Backend interface {
	// Transcribe transcribes a stored audio file and returns the raw text
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Name returns the name of the backend (e.g., "openai", "remote")
	Name() string
}
