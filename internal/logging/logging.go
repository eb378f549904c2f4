// Package logging builds the slog loggers used by the server and the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a config level name to a slog level. Unknown names are
// treated as info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Open returns a logger for the given level. When path is set logs go to a
// size capped file there; otherwise they go to console. If the file cannot be
// opened the error is reported on console and console is used. The returned
// close function is never nil.
func Open(console io.Writer, level, path string) (*slog.Logger, func() error) {
	if path == "" {
		return New(console, level), func() error { return nil }
	}

	writer, err := NewFileWriter(path)
	if err != nil {
		logger := New(console, level)
		logger.Error("failed to open log file, logging to console", "path", path, "error", err)
		return logger, func() error { return nil }
	}
	return New(writer, level), writer.Close
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
