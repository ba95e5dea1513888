package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{ServiceName: "electric-cars", Level: "debug", Output: &buf})
	t.Cleanup(func() { Logger = zerolog.Nop() })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	Info(ctx).Msg("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "electric-cars", line["service"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "hello", line["message"])
	assert.NotContains(t, line, "trace_id")
}

func TestInit_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{ServiceName: "electric-cars", Level: "warn", Output: &buf})
	t.Cleanup(func() { Logger = zerolog.Nop() })

	Info(context.Background()).Msg("dropped")
	assert.Zero(t, buf.Len())

	Warn(context.Background()).Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
