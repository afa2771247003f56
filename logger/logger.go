// Package logger provides a minimal slog-based logging wrapper.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	Enabled bool
	Level   string
	Stdout  bool
	File    string
}

var (
	mu   sync.RWMutex
	base *slog.Logger // nil until Init; logging before Init is dropped

	cfg       Config
	file      *os.File  // log file opened during Init
	intercept io.Writer // non-nil while the chat window owns the terminal
)

// Init configures the logger. A relative File is resolved against baseDir.
// A file that cannot be opened is reported, but logging continues on stdout.
func Init(c Config, baseDir string) error {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	cfg = c

	if !c.Enabled {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	var initErr error
	if c.File != "" {
		path := expandPath(c.File, baseDir)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			initErr = fmt.Errorf("logger: create log dir: %w", err)
		} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
			initErr = fmt.Errorf("logger: open log file: %w", err)
		} else {
			file = f
		}
	}

	rebuild()
	return initErr
}

// Close releases the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	if base != nil && cfg.Enabled {
		rebuild()
	}
}

// Intercept replaces stdout with w (e.g. the TUI log panel) so log lines do
// not tear the full-screen view. The file writer is preserved.
func Intercept(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	intercept = w
	if base != nil && cfg.Enabled {
		rebuild()
	}
}

// Restore undoes Intercept.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	intercept = nil
	if base != nil && cfg.Enabled {
		rebuild()
	}
}

// rebuild must be called with mu held.
func rebuild() {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var writers []io.Writer
	if intercept != nil {
		writers = append(writers, intercept)
	} else if cfg.Stdout {
		writers = append(writers, os.Stdout)
	}
	if file != nil {
		writers = append(writers, file)
	}
	if len(writers) == 0 {
		base = slog.New(slog.NewTextHandler(io.Discard, opts))
		return
	}

	base = slog.New(slog.NewTextHandler(io.MultiWriter(writers...), opts))
}

func closeFile() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	log(slog.LevelDebug, msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	log(slog.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	log(slog.LevelWarn, msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	log(slog.LevelError, msg, args...)
}

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()

	if l == nil {
		return
	}
	l.Log(context.Background(), level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func expandPath(path, baseDir string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
