package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Title != "Simple Chatbot" {
		t.Fatalf("Window.Title = %q, want %q", cfg.Window.Title, "Simple Chatbot")
	}
	if cfg.Window.Width != 400 || cfg.Window.Height != 500 {
		t.Fatalf("Window size = %dx%d, want 400x500", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.ShowLogs {
		t.Fatalf("ShowLogs should default to false")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Window.ShowLogs = true
	cfg.Logging.Level = "debug"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config.yaml should exist: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.Window.ShowLogs || got.Logging.Level != "debug" {
		t.Fatalf("Load() = %+v, want showLogs and debug level", got)
	}
}

func TestParseFillsPartialConfig(t *testing.T) {
	cfg, err := Parse([]byte("window:\n  title: Helper\nlogging:\n  stdout: true\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Window.Title != "Helper" {
		t.Fatalf("Title = %q, want Helper", cfg.Window.Title)
	}
	if cfg.Window.Width != 400 || cfg.Window.Height != 500 {
		t.Fatalf("size = %dx%d, want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		t.Fatalf("File = %q, want empty when stdout is set", cfg.Logging.File)
	}
	if cfg.Logging.Enabled == nil || !*cfg.Logging.Enabled {
		t.Fatalf("Enabled should default to true")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [")); err == nil {
		t.Fatalf("Parse() should fail on malformed yaml")
	}
}

func TestBuildLoggerConfigHonoursDisabled(t *testing.T) {
	off := false
	cfg := DefaultConfig()
	cfg.Logging.Enabled = &off
	if cfg.BuildLoggerConfig().Enabled {
		t.Fatalf("logger should be disabled")
	}
}
