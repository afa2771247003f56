package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linanwx/simplechat/logger"
	"github.com/linanwx/simplechat/session"
)

const (
	// A logical pixel geometry maps onto terminal cells at this size.
	cellWidthPx  = 8
	cellHeightPx = 16

	defaultLogRatio = 0.3
	sendLabel       = "Send"
)

var (
	titleStyle     = lipgloss.NewStyle().Reverse(true).Bold(true).Align(lipgloss.Center)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusSend
)

// Options configures the chat window.
type Options struct {
	Title    string
	Width    int // logical pixels
	Height   int // logical pixels
	ShowLogs bool
	Session  *session.Session // nil starts a fresh session
}

// App is the root bubbletea model: a title bar, the chat log, an optional
// log panel, the input field and the Send button.
type App struct {
	title   string
	session *session.Session

	chatPanel  *ChatPanel
	logPanel   *LogPanel
	inputPanel *InputPanel
	sendButton *ButtonPanel
	showLogs   bool
	focus      focusTarget
	terminated bool

	maxW, maxH     int // frame cap in cells
	termW, termH   int
	frameW, frameH int
	frameX, frameY int // frame origin within the terminal
	inputRow       int // rows within the frame; -1 when not shown
	buttonRow      int
	chatH, logH    int // 0 when the panel does not fit
	showTitle      bool
	showSep        bool
	initialized    bool
}

// NewApp creates the root TUI model.
func NewApp(opts Options) *App {
	sess := opts.Session
	if sess == nil {
		sess = session.New(nil)
	}
	return &App{
		title:      opts.Title,
		session:    sess,
		chatPanel:  NewChatPanel(),
		logPanel:   NewLogPanel(),
		inputPanel: NewInputPanel(""),
		sendButton: NewButtonPanel(sendLabel),
		showLogs:   opts.ShowLogs,
		maxW:       max(opts.Width/cellWidthPx, 1),
		maxH:       max(opts.Height/cellHeightPx, 1),
	}
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), m.inputPanel.Focus())
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case LogLineMsg:
		_, cmd := m.logPanel.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// e.g. cursor blink
		_, cmd := m.inputPanel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		logger.Info("chat window closed by user")
		return tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		return m.toggleFocus()
	case tea.KeyPgUp, tea.KeyPgDown:
		_, cmd := m.chatPanel.Update(msg)
		return cmd
	case tea.KeyEnter:
		return m.submit()
	}

	if m.focus == focusSend {
		if msg.Type == tea.KeySpace {
			return m.submit()
		}
		return nil
	}
	_, cmd := m.inputPanel.Update(msg)
	return cmd
}

func (m *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		_, cmd := m.chatPanel.Update(msg)
		return cmd
	}
	x, y := msg.X-m.frameX, msg.Y-m.frameY
	if x < 0 || x >= m.frameW || y < 0 || y >= m.frameH {
		return nil
	}
	switch y {
	case m.buttonRow:
		if m.sendButton.Hit(x) {
			return m.submit()
		}
	case m.inputRow:
		if m.focus != focusInput {
			return m.toggleFocus()
		}
	}
	return nil
}

// submit is the single submit action shared by Enter and the Send button.
func (m *App) submit() tea.Cmd {
	if m.terminated {
		return nil
	}
	d, added, err := m.session.Submit(m.inputPanel.Value())
	if err != nil {
		return nil
	}
	if d.ShouldTerminate {
		m.terminated = true
		return tea.Quit
	}
	m.chatPanel.Update(ChatLinesMsg{Lines: added})
	m.inputPanel.Reset()
	return nil
}

func (m *App) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusSend
		m.inputPanel.Blur()
		m.sendButton.SetFocused(true)
		return nil
	}
	m.focus = focusInput
	m.sendButton.SetFocused(false)
	return m.inputPanel.Focus()
}

func (m *App) View() string {
	if !m.initialized {
		return "initializing..."
	}
	if m.terminated {
		return ""
	}

	row := lipgloss.NewStyle().Width(m.frameW).MaxWidth(m.frameW)
	sep := separatorStyle.Render(strings.Repeat("─", m.frameW))

	var parts []string
	if m.showTitle {
		parts = append(parts, titleStyle.Width(m.frameW).MaxWidth(m.frameW).Render(m.title))
	}
	if m.chatH > 0 {
		parts = append(parts, m.chatPanel.View())
	}
	if m.logH > 0 {
		parts = append(parts, sep, m.logPanel.View())
	}
	if m.showSep {
		parts = append(parts, sep)
	}
	parts = append(parts, row.Render(m.inputPanel.View()))
	if m.buttonRow >= 0 {
		parts = append(parts, row.Render(m.sendButton.View()))
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, frame)
}

// recalcLayout caps the frame at the configured geometry and centres it.
// On short terminals rows are given up in this order: the title, the
// separator, the log panel, the chat log, then the Send button. The input
// row is always kept.
func (m *App) recalcLayout() {
	const (
		sepH    = 1
		inputH  = 1
		buttonH = 1
	)

	m.frameW = max(min(m.termW, m.maxW), 1)
	m.frameH = max(min(m.termH, m.maxH), 1)
	m.frameX = max((m.termW-m.frameW)/2, 0)
	m.frameY = max((m.termH-m.frameH)/2, 0)

	showButton := m.frameH >= 2
	m.showSep = m.frameH >= 4
	m.showTitle = m.frameH >= 5

	body := m.frameH - inputH
	if showButton {
		body -= buttonH
	}
	if m.showSep {
		body -= sepH
	}
	if m.showTitle {
		body--
	}

	m.chatH, m.logH = body, 0
	if m.showLogs {
		logH := int(float64(body) * defaultLogRatio)
		if logH >= 1 && body-logH-sepH >= 1 {
			m.logH = logH
			m.chatH = body - logH - sepH
		}
	}
	m.chatPanel.SetSize(m.frameW, m.chatH)
	m.logPanel.SetSize(m.frameW, m.logH)
	m.inputPanel.SetSize(m.frameW, inputH)
	m.sendButton.SetSize(m.frameW, buttonH)

	m.inputRow = m.frameH - inputH
	m.buttonRow = -1
	if showButton {
		m.inputRow -= buttonH
		m.buttonRow = m.frameH - buttonH
	}
	m.initialized = true
}

// Lines returns the chat log as shown, without styling.
func (m *App) Lines() []string { return m.chatPanel.Lines() }

// InputValue is the current input field content.
func (m *App) InputValue() string { return m.inputPanel.Value() }

// Terminated reports whether the exit phrase closed the window.
func (m *App) Terminated() bool { return m.terminated }

// FrameSize is the frame size in cells after the last resize.
func (m *App) FrameSize() (int, int) { return m.frameW, m.frameH }
