// Package logging builds the process logger from LogConfig.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sadopc/aura/internal/config"
	"github.com/sadopc/aura/internal/store"
)

// New creates a *slog.Logger writing to w and sets it as the default logger.
//
// Format "json" produces JSON lines; anything else produces text with source
// info. Level is one of debug, info, warn, error (case-insensitive) and
// defaults to info.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// OpenFile opens the log file named by cfg for appending, creating its
// directory as needed. An empty File means <data dir>/aura.log.
func OpenFile(cfg config.LogConfig) (*os.File, error) {
	path := cfg.File
	if path == "" {
		dir, err := store.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		path = filepath.Join(dir, "aura.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
