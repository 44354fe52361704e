// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog level. Unknown names report false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning", "":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelWarn, false
}

// LevelName returns the canonical name (debug, info, warn, error) for a
// level ParseLevel accepts, so "warning" and "" become "warn". Unknown names
// come back lowercased and trimmed for the caller to reject.
func LevelName(name string) string {
	lvl, ok := ParseLevel(name)
	if !ok {
		return strings.ToLower(strings.TrimSpace(name))
	}
	switch lvl {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelInfo:
		return "info"
	case slog.LevelError:
		return "error"
	default:
		return "warn"
	}
}

// Setup installs a text logger writing to w at the named level and returns it.
// An unknown level falls back to warn and is reported through the new logger.
func Setup(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "warn")
	}
	return logger
}
