package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputPanel provides the single-line text input.
type InputPanel struct {
	input         textinput.Model
	width, height int
}

// NewInputPanel creates a focused input panel with the given prompt.
func NewInputPanel(prompt string) *InputPanel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()
	return &InputPanel{input: ti}
}

func (p *InputPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *InputPanel) View() string {
	return p.input.View()
}

func (p *InputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width-len(p.input.Prompt)-1, 1)
}

// Value is the current, untrimmed input text.
func (p *InputPanel) Value() string { return p.input.Value() }

// Reset clears the input.
func (p *InputPanel) Reset() { p.input.Reset() }

// Focus gives the input keyboard focus and starts the cursor blinking.
func (p *InputPanel) Focus() tea.Cmd { return p.input.Focus() }

// Blur removes keyboard focus.
func (p *InputPanel) Blur() { p.input.Blur() }

// Focused reports whether the input has keyboard focus.
func (p *InputPanel) Focused() bool { return p.input.Focused() }
