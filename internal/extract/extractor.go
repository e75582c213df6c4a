package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Backend defines the interface for text extraction backends
type Backend interface {
	// ProcessText runs the extraction instruction over a transcript and
	// returns the raw delimited response
	ProcessText(ctx context.Context, transcript string) (string, error)

	// Name returns the name of the backend (e.g., "openai", "remote")
	Name() string
}

// ErrBackend wraps any failure or timeout of the extraction backend.
var ErrBackend = errors.New("extraction backend failed")

// MalformedResponseError reports a backend response that cannot be mapped
// onto the fixed schema. It carries the raw response instead of guessing
// field alignment.
type MalformedResponseError struct {
	Raw    string
	Fields int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed extraction response: got %d fields, want %d: %q", e.Fields, FieldCount, e.Raw)
}

// Extractor maps transcripts onto Records through a backend.
type Extractor struct {
	backend Backend
	timeout time.Duration
}

func NewExtractor(backend Backend, timeout time.Duration) *Extractor {
	return &Extractor{backend: backend, timeout: timeout}
}

// Extract runs one transcript through the backend, once, with no retry.
func (x *Extractor) Extract(ctx context.Context, transcript string) (*Record, error) {
	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	raw, err := x.backend.ProcessText(ctx, transcript)
	if err != nil {
		log.Printf("[Extract] Backend %s error: %v", x.backend.Name(), err)
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return ParseResponse(raw)
}

// ParseResponse splits the backend's raw text on the fixed delimiter and
// maps the values onto the schema. Fewer than eleven fields fails loudly;
// more than eleven (delimiter inside free text) truncates with a warning.
func ParseResponse(raw string) (*Record, error) {
	parts := strings.Split(raw, ";")
	if len(parts) < FieldCount {
		return nil, &MalformedResponseError{Raw: raw, Fields: len(parts)}
	}
	if len(parts) > FieldCount {
		log.Printf("[Extract] Warning: response has %d fields, truncating to %d: %q", len(parts), FieldCount, raw)
		parts = parts[:FieldCount]
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			p = Unknown
		}
		parts[i] = p
	}

	return &Record{
		Name:            parts[0],
		Sex:             normalizeSex(parts[1]),
		Age:             parts[2],
		ChiefComplaint:  parts[3],
		CurrentProblem:  parts[4],
		PersonalHistory: parts[5],
		FamilyHistory:   parts[6],
		Vaccination:     parts[7],
		Diagnosis:       parts[8],
		Observations:    parts[9],
		Treatment:       parts[10],
	}, nil
}

// normalizeSex coerces the Sex field onto its enumerated values
func normalizeSex(v string) string {
	switch strings.ToLower(v) {
	case strings.ToLower(SexMale):
		return SexMale
	case strings.ToLower(SexFemale):
		return SexFemale
	default:
		return Unknown
	}
}
