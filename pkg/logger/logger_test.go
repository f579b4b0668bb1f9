package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("medi", "info", "json", &buf)

	log.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "medi", entry["component"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("medi", "warn", "text", &buf)

	log.Info("suppressed")
	assert.Empty(t, buf.String())

	log.Warn("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithWriter_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("medi", "loud", "text", &buf)

	log.Info("suppressed")
	assert.Empty(t, buf.String())
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("medi", "info", "json", &buf)
	ctx := WithRequestID(context.Background(), "req-123")

	WithContext(ctx, log).Info("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
}
