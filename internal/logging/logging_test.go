package logging

import (
	"log/slog"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" info ", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := levelFromString(tc.in); got != tc.want {
			t.Errorf("levelFromString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComponentToleratesNilParent(t *testing.T) {
	logger := Component(nil, "storage")
	if logger == nil {
		t.Fatal("Component returned nil")
	}
	logger.Debug("must not panic")
}
