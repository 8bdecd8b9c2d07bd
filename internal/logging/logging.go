package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger writing to w.
// level may be "debug", "info", "warn", or "error" (default "info").
// format may be "json" or "text" (default "text").
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Setup initialises the global slog default logger on stderr, leaving
// stdout to command output.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// ParseLevel maps a level name to its slog level. Unknown names give
// slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// ValidLevel reports whether level is one of the names ParseLevel knows.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidFormat reports whether format names a handler New can build.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "text":
		return true
	}
	return false
}
