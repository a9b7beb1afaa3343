package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logFilePath returns CODEQUEST_LOG or codequest.log next to the database.
func logFilePath(dbPath string) string {
	if p := os.Getenv("CODEQUEST_LOG"); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(dbPath), "codequest.log")
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
