package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"":      slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		if !ok || got != want {
			t.Fatalf("%q: expected %v, got %v (ok=%v)", name, want, got, ok)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level to report false")
	}
}

func TestLevelNameCanonicalizes(t *testing.T) {
	cases := map[string]string{
		"":        "warn",
		"warning": "warn",
		" WARN ":  "warn",
		"Debug":   "debug",
		"info":    "info",
		"ERROR":   "error",
		" Loud ":  "loud",
	}
	for in, want := range cases {
		if got := LevelName(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, "warn")
	slog.Info("hidden")
	slog.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "key=value") {
		t.Fatalf("expected text-formatted warning, got %q", out)
	}
}

func TestSetupReportsInvalidLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, "loud")
	if !strings.Contains(buf.String(), "configured_level=loud") {
		t.Fatalf("expected invalid level warning, got %q", buf.String())
	}
}
