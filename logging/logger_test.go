package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, format OutputFormat, level LogLevel) Logger {
	factory := NewLoggingBuilder().
		SetMinimumLevel(level).
		AddConsole(ConsoleLoggerOptions{
			Format: format,
			Output: buf,
		}).
		Build()
	return factory.CreateLogger("Test")
}

func TestConsoleText(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, FormatText, LogLevelInfo)

	logger.Info("Hello", Field{Key: "key", Value: "val"})

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "key")
	assert.Contains(t, out, "val")
}

func TestConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, FormatJSON, LogLevelInfo)

	logger.WithFields(Field{Key: "key", Value: "val"}).Info("Hello")

	var data map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "INFO", data["level"])
	assert.Equal(t, "Test", data["category"])
	assert.Equal(t, "Hello", data["msg"])
	assert.Equal(t, "val", data["key"])
}

func TestMinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, FormatText, LogLevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")
	logger.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestWithFieldsDoesNotLeak(t *testing.T) {
	logger, logs := NewObservedLogger(LogLevelDebug)

	base := logger.WithFields(Field{Key: "a", Value: 1})
	first := base.WithFields(Field{Key: "b", Value: 2})
	second := base.WithFields(Field{Key: "c", Value: 3})

	first.Info("first")
	second.Info("second")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]any{"a": int64(1), "b": int64(2)}, entries[0].ContextMap())
	assert.Equal(t, map[string]any{"a": int64(1), "c": int64(3)}, entries[1].ContextMap())
}

func TestWithCategory(t *testing.T) {
	logger, logs := NewObservedLogger(LogLevelInfo)

	logger.WithCategory("Lifecycle").Info("marker")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Lifecycle", entries[0].LoggerName)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", LogLevelDebug, true},
		{"INFO", LogLevelInfo, true},
		{"", LogLevelInfo, true},
		{"warning", LogLevelWarn, true},
		{"loud", LogLevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestNop(t *testing.T) {
	logger := Nop().WithCategory("x").WithFields(Field{Key: "k", Value: "v"})
	logger.Info("nothing")
}
