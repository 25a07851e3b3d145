package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sant0-9/replybot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabled(t *testing.T) {
	logger, err := New(&config.LogConfig{Enabled: false}, false)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = New(nil, true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "replybot.log")

	logger, err := New(&config.LogConfig{Enabled: true, Path: path, Level: "info"}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("bot loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bot loaded")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replybot.log")

	logger, err := New(&config.LogConfig{Enabled: true, Path: path, Level: "error"}, true)
	require.NoError(t, err)

	logger.Debug("trace line")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "trace line")
}

func TestNewBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replybot.log")

	_, err := New(&config.LogConfig{Enabled: true, Path: path, Level: "loud"}, false)
	assert.Error(t, err)
}
