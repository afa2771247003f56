package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const userLinePrefix = "You: "

var userLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan

// ChatPanel is the read-only chat log. Lines are only ever appended.
type ChatPanel struct {
	viewport viewport.Model
	lines    []string
	width    int
}

// NewChatPanel creates a chat panel.
func NewChatPanel() *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &ChatPanel{viewport: vp}
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatLinesMsg:
		p.lines = append(p.lines, msg.Lines...)
		p.refresh()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *ChatPanel) View() string {
	return p.viewport.View()
}

func (p *ChatPanel) SetSize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

// Lines returns the raw log lines, without styling or wrapping.
func (p *ChatPanel) Lines() []string {
	return append([]string(nil), p.lines...)
}

// refresh re-wraps every line to the current width and keeps the newest
// line in view.
func (p *ChatPanel) refresh() {
	rendered := make([]string, len(p.lines))
	wrap := lipgloss.NewStyle()
	if p.width > 0 {
		wrap = wrap.Width(p.width)
	}
	for i, line := range p.lines {
		if strings.HasPrefix(line, userLinePrefix) {
			rendered[i] = wrap.Inherit(userLineStyle).Render(line)
		} else {
			rendered[i] = wrap.Render(line)
		}
	}
	p.viewport.SetContent(strings.Join(rendered, "\n"))
	p.viewport.GotoBottom()
}
