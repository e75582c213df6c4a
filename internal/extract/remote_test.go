package extract_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediform/internal/extract"
)

func TestRemoteBackendProcessText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Transcription string `json:"transcription"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "some transcript", req.Transcription)

		w.Write([]byte(scenarioResponse))
	}))
	defer srv.Close()

	backend := extract.NewRemoteBackend(srv.URL)
	raw, err := backend.ProcessText(context.Background(), "some transcript")
	require.NoError(t, err)
	assert.Equal(t, scenarioResponse, raw)
}

func TestRemoteBackendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "model unavailable"}`))
	}))
	defer srv.Close()

	backend := extract.NewRemoteBackend(srv.URL)
	_, err := backend.ProcessText(context.Background(), "some transcript")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
