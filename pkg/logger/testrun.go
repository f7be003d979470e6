package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards every record; level still drives Enabled checks.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
