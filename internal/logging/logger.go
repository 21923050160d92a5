package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a structured logger with sane defaults.
func NewLogger() *slog.Logger {
	return NewLoggerAt(os.Stdout, slog.LevelInfo)
}

// NewLoggerAt returns a text logger writing to w at the given level.
// Client call logging happens at debug, so tests pass LevelDebug here.
func NewLoggerAt(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
