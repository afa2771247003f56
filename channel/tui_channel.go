package channel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linanwx/simplechat/channel/tui"
	"github.com/linanwx/simplechat/logger"
)

const logBufferSize = 256

// TUIChannel runs the chat window as a bubbletea program.
type TUIChannel struct {
	cfg Config
	app *tui.App
}

func newTUIChannel(cfg Config) *TUIChannel {
	return &TUIChannel{cfg: cfg}
}

func (c *TUIChannel) Name() string { return "tui" }

func (c *TUIChannel) Run(ctx context.Context) error {
	c.app = tui.NewApp(tui.Options{
		Title:    c.cfg.Title,
		Width:    c.cfg.Width,
		Height:   c.cfg.Height,
		ShowLogs: c.cfg.ShowLogs,
		Session:  c.cfg.Session,
	})
	program := tea.NewProgram(c.app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	logger.Info("chat window opening", "title", c.cfg.Title)

	// Log lines would tear the full-screen view; route them to the log panel.
	lw := newLogWriter(program)
	logger.Intercept(lw)
	_, err := program.Run()
	logger.Restore()
	lw.close()

	logger.Info("chat window closed", "state", c.cfg.Session.State().String())

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("chat window: %w", err)
	}
	return nil
}

// logWriter implements io.Writer and forwards each line as a LogLineMsg.
// Writes never block: records logged from inside Update would otherwise wait
// on the event loop they are running in. Lines are dropped when the buffer
// is full.
type logWriter struct {
	program *tea.Program
	lines   chan string
	done    chan struct{}
	once    sync.Once
}

func newLogWriter(program *tea.Program) *logWriter {
	w := &logWriter{
		program: program,
		lines:   make(chan string, logBufferSize),
		done:    make(chan struct{}),
	}
	go w.pump()
	return w
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		select {
		case <-w.done:
			return len(p), nil
		case w.lines <- string(line):
		default:
		}
	}
	return len(p), nil
}

func (w *logWriter) pump() {
	for {
		select {
		case <-w.done:
			return
		case line := <-w.lines:
			// Send returns once the program has exited.
			w.program.Send(tui.LogLineMsg{Line: line})
		}
	}
}

func (w *logWriter) close() {
	w.once.Do(func() { close(w.done) })
}
