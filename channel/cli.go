package channel

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/linanwx/simplechat/logger"
)

// plainCLIChannel is the line-oriented chat for non-TTY input. Each input
// line is one submit; the exchange is written to Out as the log lines.
type plainCLIChannel struct {
	cfg Config
}

func newPlainCLIChannel(cfg Config) *plainCLIChannel {
	return &plainCLIChannel{cfg: cfg}
}

func (c *plainCLIChannel) Name() string {
	return "plain"
}

func (c *plainCLIChannel) Run(ctx context.Context) error {
	logger.Info("chat started (plain mode)")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		// ReadString has no line length limit, unlike bufio.Scanner.
		reader := bufio.NewReader(c.cfg.In)
		for {
			line, err := reader.ReadString('\n')
			if err == nil || line != "" {
				select {
				case lines <- trimLineEnding(line):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					scanErr <- err
				}
				return
			}
		}
	}()

	w := bufio.NewWriter(c.cfg.Out)
	defer w.Flush()

	for {
		select {
		case <-ctx.Done():
			logger.Info("chat stopped", "reason", ctx.Err())
			return nil
		case raw, ok := <-lines:
			if !ok {
				logger.Info("chat input closed")
				select {
				case err := <-scanErr:
					return fmt.Errorf("read input: %w", err)
				default:
				}
				return nil
			}

			d, added, err := c.cfg.Session.Submit(raw)
			if err != nil {
				return nil
			}
			if d.ShouldTerminate {
				return nil
			}
			if _, err := fmt.Fprintln(w, strings.Join(added, "\n")); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}

// trimLineEnding strips only the line terminator; other whitespace is
// part of the utterance.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
