package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultMaxLogLines = 500

var levelStyles = map[string]lipgloss.Style{
	"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// LogPanel shows diagnostic log output under the chat. Only visible when
// enabled in config. Records are compacted to fit the narrow frame.
type LogPanel struct {
	viewport viewport.Model
	lines    []string
	maxLines int
	counts   map[string]int // records seen per level, trimmed ones included
}

// NewLogPanel creates a log panel.
func NewLogPanel() *LogPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &LogPanel{
		viewport: vp,
		maxLines: defaultMaxLogLines,
		counts:   make(map[string]int),
	}
}

func (p *LogPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case LogLineMsg:
		text, level := compactLogLine(strings.TrimRight(msg.Line, "\n"))
		p.counts[level]++
		style, ok := levelStyles[level]
		if !ok {
			style = levelStyles["DEBUG"]
		}
		p.lines = append(p.lines, style.Render(text))
		if len(p.lines) > p.maxLines {
			p.lines = p.lines[len(p.lines)-p.maxLines:]
		}
		p.viewport.SetContent(strings.Join(p.lines, "\n"))
		p.viewport.GotoBottom()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *LogPanel) View() string {
	return p.viewport.View()
}

func (p *LogPanel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// Len is the number of retained log lines.
func (p *LogPanel) Len() int { return len(p.lines) }

// Count is the number of records seen at level (e.g. "WARN").
func (p *LogPanel) Count(level string) int { return p.counts[level] }

// compactLogLine rewrites a slog text record
//
//	time=2026-10-18T21:36:00.123+00:00 level=INFO msg="chat window opening" title=x
//
// as "21:36:00 INFO chat window opening title=x" and reports its level.
// Lines in any other shape are returned unchanged with an empty level.
func compactLogLine(line string) (string, string) {
	rest := line
	clock := ""
	if strings.HasPrefix(rest, "time=") {
		ts, after, _ := strings.Cut(rest[len("time="):], " ")
		if _, t, ok := strings.Cut(ts, "T"); ok && len(t) >= 8 {
			clock = t[:8]
		}
		rest = after
	}
	if !strings.HasPrefix(rest, "level=") {
		return line, ""
	}
	level, after, _ := strings.Cut(rest[len("level="):], " ")
	rest = after
	if strings.HasPrefix(rest, "msg=") {
		rest = rest[len("msg="):]
		if strings.HasPrefix(rest, `"`) {
			if end := strings.Index(rest[1:], `"`); end >= 0 {
				rest = rest[1:end+1] + rest[end+2:]
			}
		}
	}

	parts := make([]string, 0, 3)
	if clock != "" {
		parts = append(parts, clock)
	}
	parts = append(parts, level)
	if rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " "), level
}
