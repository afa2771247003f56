package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFileAndIntercept(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Config{Enabled: true, Level: "debug", File: "logs/chat.log"}, dir); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(Close)

	var buf bytes.Buffer
	Intercept(&buf)
	Debug("classified", "category", "greeting")
	Restore()

	if !strings.Contains(buf.String(), "category=greeting") {
		t.Fatalf("intercepted output = %q, want category attr", buf.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "logs", "chat.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "msg=classified") {
		t.Fatalf("log file = %q, want classified record", data)
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	if err := Init(Config{Enabled: true, Level: "warn"}, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(Close)

	var buf bytes.Buffer
	Intercept(&buf)
	defer Restore()

	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("output = %q, want only warn record", out)
	}
}

func TestDisabledLoggerDropsEverything(t *testing.T) {
	if err := Init(Config{Enabled: false}, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	var buf bytes.Buffer
	Intercept(&buf)
	defer Restore()

	Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("a.log", "/base"); got != filepath.Join("/base", "a.log") {
		t.Fatalf("relative path = %q", got)
	}
	if got := expandPath("/abs/a.log", "/base"); got != "/abs/a.log" {
		t.Fatalf("absolute path = %q", got)
	}
	if got := expandPath("a.log", ""); got != "a.log" {
		t.Fatalf("no base dir = %q", got)
	}
}
