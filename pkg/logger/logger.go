package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup creates and configures the application logger.
// Logs go to stderr so that stdout stays free for the YAML result.
func Setup(logLevel, logFormat string) *slog.Logger {
	return New(os.Stderr, logLevel, logFormat)
}

// New builds a logger writing to w
func New(w io.Writer, logLevel, logFormat string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	var handler slog.Handler
	if strings.ToLower(logFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level, defaulting to info
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
