// Package session holds the per-window chat state: the append-only chat log
// and the running/terminated state machine. It knows nothing about widgets.
package session

import (
	"errors"

	"github.com/linanwx/simplechat/logger"
	"github.com/linanwx/simplechat/responder"
)

const (
	userPrefix = "You: "
	botPrefix  = "Chatbot: "
)

// ErrTerminated is returned when a submit arrives after the exit decision.
var ErrTerminated = errors.New("session terminated")

// State is the lifecycle of a chat window.
type State int

const (
	Running    State = iota // Accepting submits.
	Terminated              // Final. Reached only through the exit category.
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Classifier maps raw input to a decision. responder.Classify satisfies it.
type Classifier func(raw string) responder.ReplyDecision

// Session is the state behind one chat window. It is not safe for concurrent
// use; the owning event loop serialises submits.
type Session struct {
	classify Classifier
	state    State
	lines    []string
}

// New creates a running session. A nil classifier uses responder.Classify.
func New(classify Classifier) *Session {
	if classify == nil {
		classify = responder.Classify
	}
	return &Session{classify: classify}
}

// Submit classifies raw and, unless the decision terminates the session,
// appends the exchange to the log. It returns the lines it appended.
func (s *Session) Submit(raw string) (responder.ReplyDecision, []string, error) {
	if s.state == Terminated {
		return responder.ReplyDecision{}, nil, ErrTerminated
	}

	d := s.classify(raw)
	logger.Debug("utterance classified", "category", d.Category.String(), "len", len(raw))

	if d.ShouldTerminate {
		s.state = Terminated
		logger.Info("exit requested, terminating session", "lines", len(s.lines))
		return d, nil, nil
	}

	added := FormatExchange(d)
	s.lines = append(s.lines, added...)
	return d, added, nil
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Lines returns a copy of the chat log.
func (s *Session) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Len is the number of log lines, separators included.
func (s *Session) Len() int { return len(s.lines) }

// FormatExchange renders one decision as the three log lines it produces.
func FormatExchange(d responder.ReplyDecision) []string {
	return []string{
		userPrefix + d.Utterance,
		botPrefix + d.Reply,
		"",
	}
}
