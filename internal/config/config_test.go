package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 2, cfg.HTTPMaxRetries)
	assert.True(t, cfg.BreakerEnabled)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Contains(t, cfg.TokenFile, "medi")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MEDI_API_URL", "https://api.medi.example.com/api/v1")
	t.Setenv("MEDI_TOKEN_FILE", "/tmp/medi-test-tokens.json")
	t.Setenv("MEDI_HTTP_TIMEOUT", "3s")
	t.Setenv("MEDI_HTTP_MAX_RETRIES", "5")
	t.Setenv("MEDI_BREAKER_ENABLED", "false")
	t.Setenv("MEDI_LOG_LEVEL", "debug")
	t.Setenv("MEDI_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.medi.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/medi-test-tokens.json", cfg.TokenFile)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.HTTPMaxRetries)
	assert.False(t, cfg.BreakerEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("MEDI_HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
