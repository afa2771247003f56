// Package channel provides the front-ends a chat session runs behind.
package channel

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/linanwx/simplechat/session"
)

// Channel is a chat front-end. Run blocks until the window is closed, the
// exit phrase is submitted, input ends, or ctx is cancelled.
type Channel interface {
	// Name returns the channel name ("tui" or "plain").
	Name() string

	// Run drives the session until it ends.
	Run(ctx context.Context) error
}

// Config describes the chat window a channel opens.
type Config struct {
	Title    string
	Width    int // logical pixels
	Height   int // logical pixels
	ShowLogs bool
	Plain    bool // force the line-oriented channel

	// Session defaults to a fresh session.
	Session *session.Session

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

func (c *Config) normalize() {
	if c.Session == nil {
		c.Session = session.New(nil)
	}
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
}

// NewCLIChannel creates the chat front-end.
// If stdin is a terminal it returns the TUI window; otherwise a plain line reader.
func NewCLIChannel(cfg Config) Channel {
	cfg.normalize()
	if !cfg.Plain && isTerminal(cfg.In) {
		return newTUIChannel(cfg)
	}
	return newPlainCLIChannel(cfg)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
