package transcribe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"mediform/internal/artifact"
)

// Submission is one inbound audio payload.
type Submission struct {
	Filename    string
	Content     []byte
	ContentType string // advisory only, the extension decides
}

// Result is an immutable transcription result. Text may be empty when the
// backend detected no speech.
type Result struct {
	Text       string
	ArtifactID string
}

var (
	// ErrUnsupportedFormat is returned before any storage write when the
	// filename extension is not on the allow-list.
	ErrUnsupportedFormat = errors.New("unsupported audio format, only .mp3 and .m4a are accepted")

	// ErrBackend wraps any failure or timeout of the speech-to-text backend.
	ErrBackend = errors.New("transcription backend failed")
)

var allowedExts = []string{".mp3", ".m4a"}

// Worker owns one audio blob's lifecycle: store, transcribe, write the
// transcript sidecar, and always delete the blob again.
type Worker struct {
	store   *artifact.Store
	backend Backend
	timeout time.Duration
}

func NewWorker(store *artifact.Store, backend Backend, timeout time.Duration) *Worker {
	return &Worker{store: store, backend: backend, timeout: timeout}
}

// Transcribe runs one submission through the backend. The stored blob is
// deleted on every exit path; the sidecar write is best-effort.
func (w *Worker) Transcribe(ctx context.Context, sub Submission) (*Result, error) {
	if !hasAllowedExt(sub.Filename) {
		return nil, ErrUnsupportedFormat
	}

	handle, err := w.store.Put(sub.Filename, sub.Content)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Cleanup is unconditional, a delete failure never fails the pipeline
		if err := w.store.Delete(handle); err != nil {
			log.Printf("[Transcribe] Failed to delete blob %s: %v", handle.ID, err)
		}
	}()

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := w.backend.Transcribe(ctx, handle.Path)
	if err != nil {
		log.Printf("[Transcribe] Backend %s error for %s: %v", w.backend.Name(), handle.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	log.Printf("[Transcribe] Backend %s transcribed %s: length=%d, duration=%v",
		w.backend.Name(), handle.ID, len(text), time.Since(start))

	if path, err := w.store.WriteTranscript(handle, text); err != nil {
		log.Printf("[Transcribe] Warning: failed to write transcript sidecar for %s: %v", handle.ID, err)
	} else {
		log.Printf("[Transcribe] Transcript sidecar saved: %s", path)
	}

	return &Result{Text: text, ArtifactID: handle.ID}, nil
}

func hasAllowedExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
