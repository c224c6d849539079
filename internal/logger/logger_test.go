package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupReplacesLogger(t *testing.T) {
	before := Log
	got := Setup("debug")
	if got != Log || got == before {
		t.Fatal("Setup did not replace the package logger")
	}
	if !Log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug level not enabled after Setup(debug)")
	}
}
