package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging writes debug logs to path. The terminal belongs to the UI
// while it runs, so nothing goes to stdout or stderr.
func setupLogging(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	return logger, logFile, nil
}
