package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediform/internal/config"
)

func TestLoadParsesTimeouts(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("TRANSCRIBE_TIMEOUT", "45s")
	t.Setenv("EXTRACT_TIMEOUT", "2m")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.TranscribeTimeout)
	assert.Equal(t, 2*time.Minute, cfg.ExtractTimeout)
}

func TestLoadFallsBackOnInvalidTimeout(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	// No unit, not a valid duration
	t.Setenv("TRANSCRIBE_TIMEOUT", "90")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.TranscribeTimeout)
}

func TestLoadRequiresOpenAIKeyForOpenAIProviders(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TRANSCRIBE_PROVIDER", "openai")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadAllowsRemoteProvidersWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TRANSCRIBE_PROVIDER", "remote")
	t.Setenv("EXTRACT_PROVIDER", "remote")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "remote", cfg.TranscribeProvider)
}
