package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
	}{
		{"trace level", "trace", log.DebugLevel},
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "WARNING", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"unknown level", "loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.NotNil(t, handler)

			logger, ok := handler.(*log.Logger)
			require.True(t, ok, "handler should be a charmbracelet logger")
			assert.Equal(t, tt.expectedLevel, logger.GetLevel())
		})
	}
}

func TestSetupHandlerTextWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(SetupHandlerText("debug", buf))

	logger.Debug("state changed", "from", "A", "to", "B")
	assert.Contains(t, buf.String(), "state changed")
	assert.Contains(t, buf.String(), "from=A")

	buf.Reset()
	quiet := slog.New(SetupHandlerText("info", buf))
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestSetupHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := SetupHandlerJSON("debug", buf)
	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug))

	slog.New(handler).Debug("undo", "to", "A")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "undo", record["msg"])
	assert.Equal(t, "A", record["to"])
	assert.NotContains(t, record, "source")

	buf.Reset()
	slog.New(SetupHandlerJSON("trace", buf)).Debug("redo")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, "source")

	assert.False(t, SetupHandlerJSON("error", buf).Enabled(context.Background(), slog.LevelWarn))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logger := SetupLogger("debug", "json")
	require.NotNil(t, logger)
	assert.Equal(t, logger, slog.Default())
	_, isJSON := logger.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)

	logger = SetupLogger("info", "text")
	_, isText := logger.Handler().(*log.Logger)
	assert.True(t, isText)
}
