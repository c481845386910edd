package logging

import (
	"log/slog"
	"os"
	"strings"
)

const appName = "newscollector"

// New creates the collector's console logger. Every record carries the
// app attribute so scheduled runs are greppable in shared CI logs.
func New(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler).With("app", appName)
}

// Component derives a child logger tagged for one pipeline stage or
// adapter. A nil parent falls back to a fresh info-level logger so
// adapters constructed in tests never panic on logging.
func Component(parent *slog.Logger, name string) *slog.Logger {
	if parent == nil {
		parent = New("info")
	}
	return parent.With("component", name)
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
