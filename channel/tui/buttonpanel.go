package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	buttonStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	buttonFocusedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// ButtonPanel draws a centred, labelled button on a single row.
type ButtonPanel struct {
	label   string
	width   int
	focused bool
}

// NewButtonPanel creates a button rendered as "[ label ]".
func NewButtonPanel(label string) *ButtonPanel {
	return &ButtonPanel{label: "[ " + label + " ]"}
}

// Update is a no-op; activation is handled by App so a submit runs inside
// the same event as the key or click that caused it.
func (p *ButtonPanel) Update(tea.Msg) (Panel, tea.Cmd) { return p, nil }

func (p *ButtonPanel) View() string {
	style := buttonStyle
	if p.focused {
		style = buttonFocusedStyle
	}
	left := p.Offset()
	right := max(p.width-left-lipgloss.Width(p.label), 0)
	return strings.Repeat(" ", left) + style.Render(p.label) + strings.Repeat(" ", right)
}

func (p *ButtonPanel) SetSize(width, _ int) { p.width = width }

// Offset is the column the label starts at within the panel.
func (p *ButtonPanel) Offset() int {
	return max((p.width-lipgloss.Width(p.label))/2, 0)
}

// Hit reports whether column x of the panel row falls on the label.
func (p *ButtonPanel) Hit(x int) bool {
	start := p.Offset()
	return x >= start && x < start+lipgloss.Width(p.label)
}

func (p *ButtonPanel) SetFocused(v bool) { p.focused = v }
