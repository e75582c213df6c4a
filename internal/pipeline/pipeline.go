package pipeline

import (
	"context"
	"log"

	"mediform/internal/extract"
	"mediform/internal/transcribe"
)

// Transcriber turns one audio submission into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, sub transcribe.Submission) (*transcribe.Result, error)
}

// Extractor turns one transcript into a structured record.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*extract.Record, error)
}

// Sink persists one record.
type Sink interface {
	Append(rec *extract.Record) error
}

// Outcome is the combined result of one submission. PersistErr is set when
// the record was computed but could not be appended to the sink.
type Outcome struct {
	Transcription string
	Record        *extract.Record
	Persisted     bool
	PersistErr    error
}

// Pipeline drives one audio submission through transcription, extraction
// and persistence, strictly in that order, with no retries.
type Pipeline struct {
	transcriber Transcriber
	extractor   Extractor
	sink        Sink
}

func New(transcriber Transcriber, extractor Extractor, sink Sink) *Pipeline {
	return &Pipeline{transcriber: transcriber, extractor: extractor, sink: sink}
}

// Process handles one submission. Each stage's failure is terminal, except
// the sink: a persistence failure still returns the computed transcript and
// record, flagged as not persisted.
func (p *Pipeline) Process(ctx context.Context, sub transcribe.Submission) (*Outcome, error) {
	result, err := p.transcriber.Transcribe(ctx, sub)
	if err != nil {
		return nil, err
	}

	// An empty transcript is still forwarded, the extraction backend
	// answers with all-Unknown fields on non-medical input
	rec, err := p.extractor.Extract(ctx, result.Text)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Transcription: result.Text, Record: rec, Persisted: true}
	if err := p.sink.Append(rec); err != nil {
		log.Printf("[Pipeline] Failed to persist record for %s: %v", result.ArtifactID, err)
		out.Persisted = false
		out.PersistErr = err
	}
	return out, nil
}
