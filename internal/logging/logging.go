package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sant0-9/replybot/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON file logger from config. The terminal belongs to the
// shell, so nothing is written to stdout or stderr.
func New(cfg *config.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg == nil || !cfg.Enabled {
		return zap.NewNop(), nil
	}

	path := config.ExpandPath(cfg.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
