package sl

import (
	"io"
	"log/slog"
)

// Err lets slog attributes carry an error as it is (error type).
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// NewDiscardLogger is used by tests that need a logger but not its output.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
