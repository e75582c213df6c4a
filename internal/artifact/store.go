package artifact

import (
	"crypto/md5"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Handle is a durable reference to a stored audio blob.
type Handle struct {
	ID        string
	Path      string
	CreatedAt time.Time
}

// Store keeps transient audio blobs and their transcript sidecars on disk.
// IDs combine the base filename, a second-resolution timestamp and a digest
// salted with a random UUID, so two rapid uploads of the same file never
// collide.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Put writes data under a freshly generated id. The blob is written to a
// temp file first and renamed into place, so a partially written file is
// never visible to Get or Delete.
func (s *Store) Put(filename string, data []byte) (*Handle, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	now := time.Now()
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	timestamp := now.Format("20060102150405")
	digest := md5.Sum([]byte(filename + timestamp + uuid.NewString()))

	id := fmt.Sprintf("%s_%s_%x", base, timestamp, digest)
	path := filepath.Join(s.dir, id+ext)

	if err := writeFileAtomic(path, data); err != nil {
		return nil, fmt.Errorf("failed to save audio blob: %w", err)
	}

	return &Handle{ID: id, Path: path, CreatedAt: now}, nil
}

// Get reads the stored blob back.
func (s *Store) Get(h *Handle) ([]byte, error) {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio blob %s: %w", h.ID, err)
	}
	return data, nil
}

// Delete removes the blob. Deleting twice, or deleting a handle whose file
// never made it to disk, is not an error.
func (s *Store) Delete(h *Handle) error {
	if err := os.Remove(h.Path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Artifact] Blob %s already gone", h.ID)
			return nil
		}
		return fmt.Errorf("failed to delete audio blob %s: %w", h.ID, err)
	}
	return nil
}

// WriteTranscript stores the transcript sidecar next to the blob, in the
// same id namespace with a _transcription.txt suffix.
func (s *Store) WriteTranscript(h *Handle, text string) (string, error) {
	path := filepath.Join(s.dir, h.ID+"_transcription.txt")
	if err := writeFileAtomic(path, []byte(text)); err != nil {
		return "", fmt.Errorf("failed to save transcript sidecar for %s: %w", h.ID, err)
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
