package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mediform/internal/artifact"
	"mediform/internal/extract"
	"mediform/internal/pipeline"
	"mediform/internal/sink"
	"mediform/internal/transcribe"
)

type sttStub struct{ text string }

func (s *sttStub) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return s.text, nil
}
func (s *sttStub) Name() string { return "stub" }

type llmStub struct{ response string }

func (l *llmStub) ProcessText(ctx context.Context, transcript string) (string, error) {
	return l.response, nil
}
func (l *llmStub) Name() string { return "stub" }

// Full pipeline over real worker, extractor and sheet, with stubbed model
// backends: the audio blob must be gone afterwards and the sheet must gain
// exactly one row.
func TestPipelineEndToEnd(t *testing.T) {
	uploadDir := t.TempDir()
	sheetPath := filepath.Join(t.TempDir(), "records.xlsx")

	worker := transcribe.NewWorker(
		artifact.NewStore(uploadDir),
		&sttStub{text: "Patient John Doe, male, 45, abdominal pain"},
		0,
	)
	extractor := extract.NewExtractor(
		&llmStub{response: "John Doe;Masculino;45;Abdominal pain;Gastritis;Unknown;Unknown;Unknown;Gastritis;Unknown;Omeprazole 20mg"},
		0,
	)
	p := pipeline.New(worker, extractor, sink.NewSheet(sheetPath))

	out, err := p.Process(context.Background(), transcribe.Submission{
		Filename: "a.mp3",
		Content:  []byte("fake audio bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Patient John Doe, male, 45, abdominal pain", out.Transcription)
	assert.True(t, out.Persisted)
	assert.Equal(t, "John Doe", out.Record.Name)

	// Only the transcript sidecar survives in the upload dir
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_transcription.txt"))

	f, err := excelize.OpenFile(sheetPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, out.Record.Values(), rows[1])
}
