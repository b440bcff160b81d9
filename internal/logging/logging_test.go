package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Component: "server"}, &buf)
	l.Debug("hidden")
	l.Info("hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "hello" || rec["component"] != "server" || rec["k"] != "v" {
		t.Fatalf("record = %v", rec)
	}
}

func TestFrom(t *testing.T) {
	if From(context.Background()) != slog.Default() {
		t.Fatal("expected default logger")
	}
	l := New(Config{}, &bytes.Buffer{})
	if From(WithLogger(context.Background(), l)) != l {
		t.Fatal("expected attached logger")
	}
}
