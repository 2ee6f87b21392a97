package object

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLocalOnly(t *testing.T) {
	var buf bytes.Buffer
	sl := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := NewLogger("gain", "instance-1", nil, sl)
	l.Debug("constructed")
	l.Info("ready")
	l.Warn("late inlet declaration")
	l.Error("allocation failed", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "constructed")
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "late inlet declaration")
	assert.Contains(t, out, "allocation failed")
	assert.Contains(t, out, `"object":"gain"`)
	assert.Contains(t, out, `"instance":"instance-1"`)
}

func TestLoggerNilBackend(t *testing.T) {
	l := NewLogger("gain", "instance-1", nil, nil)
	// No backend and no remote connection: every call is a no-op.
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", nil)
}

func TestLogEntryShape(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-01-02T15:04:05Z",
		Level:     LogLevelWarn,
		Object:    "gain",
		Instance:  "instance-1",
		Message:   "clipped",
	}
	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "WARN", decoded["level"])
	assert.Equal(t, "gain", decoded["object"])
	// The stack field stays out of the payload when empty.
	_, present := decoded["stack"]
	assert.False(t, present)
}
