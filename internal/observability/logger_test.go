package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/config"
)

func TestGetLoggerFallsBackBeforeInit(t *testing.T) {
	if globalLogger.Load() != nil {
		t.Skip("global logger already initialized")
	}
	assert.NotNil(t, GetLogger())
}

func TestNewLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLogger(config.LoggerConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "job-canvas",
		LogFile:     path,
		MaxSize:     1,
	})
	logger.Debug("diagram generated", zap.String("kind", "mind_map"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "job-canvas", entry["logger"])
	assert.Equal(t, "mind_map", entry["kind"])
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLogger(config.LoggerConfig{Level: "warn", Format: "console", LogFile: path})
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestInitializeLoggerIsIdempotent(t *testing.T) {
	first := InitializeLogger(config.LoggerConfig{Level: "info", Format: "json"})
	second := InitializeLogger(config.LoggerConfig{Level: "debug", Format: "console"})
	assert.Same(t, first, second)
	assert.Same(t, first, GetLogger())
}
