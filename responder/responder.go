// Package responder classifies a user utterance into a canned reply.
package responder

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the closed classification label assigned to one utterance.
type Category int

const (
	Unknown Category = iota
	Exit
	Greeting
	AIDefinition
	Status
	Joke
)

func (c Category) String() string {
	switch c {
	case Exit:
		return "exit"
	case Greeting:
		return "greeting"
	case AIDefinition:
		return "ai-definition"
	case Status:
		return "status"
	case Joke:
		return "joke"
	default:
		return "unknown"
	}
}

// MarshalText renders the category name, so decisions encode readably.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// FallbackReply is returned for any utterance no rule matches.
const FallbackReply = "Sorry, I don't understand that."

// Rule maps a set of exact phrases to a category and reply.
type Rule struct {
	Category Category `json:"category"`
	Phrases  []string `json:"phrases"`
	Reply    string   `json:"reply,omitempty"`
}

// rules is evaluated top to bottom; the first rule with a matching phrase wins.
var rules = []Rule{
	{Category: Exit, Phrases: []string{"exit"}},
	{
		Category: Greeting,
		Phrases:  []string{"hello", "hi", "hey"},
		Reply:    "Hello! How can I help you today?",
	},
	{
		Category: AIDefinition,
		Phrases:  []string{"what is ai?", "what is artificial intelligence?"},
		Reply:    "AI stands for Artificial Intelligence. It's the simulation of human intelligence by machines.",
	},
	{
		Category: Status,
		Phrases:  []string{"how are you?"},
		Reply:    "I'm just a bunch of code, but I'm functioning as expected!",
	},
	{
		Category: Joke,
		Phrases:  []string{"tell me a joke"},
		Reply:    "What do you call a tiger that's sleeping? One word — tigurrrr!",
	},
}

// ReplyDecision is the result of classifying one utterance.
type ReplyDecision struct {
	// Utterance is the case-folded input the rules were matched against.
	Utterance       string   `json:"utterance"`
	Category        Category `json:"category"`
	Reply           string   `json:"reply"`
	ShouldTerminate bool     `json:"shouldTerminate"`
}

// Classify lowercases raw and matches it against the rule table.
// Whitespace is not trimmed: " hello" does not match "hello".
func Classify(raw string) ReplyDecision {
	text := fold(raw)
	for _, r := range rules {
		for _, p := range r.Phrases {
			if text == p {
				return ReplyDecision{
					Utterance:       text,
					Category:        r.Category,
					Reply:           r.Reply,
					ShouldTerminate: r.Category == Exit,
				}
			}
		}
	}
	return ReplyDecision{Utterance: text, Category: Unknown, Reply: FallbackReply}
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Phrases = append([]string(nil), r.Phrases...)
		out[i] = r
	}
	return out
}

// fold applies full Unicode lowercasing, including the special mappings
// strings.ToLower skips: "İ" becomes "i̇" (i + U+0307), so "EXİT" is not "exit".
// A Caser is stateful, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
