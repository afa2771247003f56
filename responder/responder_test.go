package responder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greeting = "Hello! How can I help you today?"

func TestClassifyExit(t *testing.T) {
	for _, in := range []string{"exit", "EXIT", "Exit"} {
		d := Classify(in)
		assert.Equal(t, Exit, d.Category, in)
		assert.True(t, d.ShouldTerminate, in)
		assert.Empty(t, d.Reply, in)
	}
}

func TestClassifyGreetings(t *testing.T) {
	for _, in := range []string{"hello", "hi", "hey", "Hey", "HELLO", "hI"} {
		d := Classify(in)
		assert.Equal(t, Greeting, d.Category, in)
		assert.Equal(t, greeting, d.Reply, in)
		assert.False(t, d.ShouldTerminate, in)
	}
}

func TestClassifyAIDefinitionPhrasingsShareReply(t *testing.T) {
	short := Classify("what is ai?")
	long := Classify("What Is Artificial Intelligence?")

	assert.Equal(t, AIDefinition, short.Category)
	assert.Equal(t, AIDefinition, long.Category)
	assert.Equal(t, short.Reply, long.Reply)
	assert.Equal(t, "AI stands for Artificial Intelligence. It's the simulation of human intelligence by machines.", short.Reply)
}

func TestClassifyStatusAndJoke(t *testing.T) {
	status := Classify("How are you?")
	assert.Equal(t, Status, status.Category)
	assert.Equal(t, "I'm just a bunch of code, but I'm functioning as expected!", status.Reply)

	joke := Classify("tell me a joke")
	assert.Equal(t, Joke, joke.Category)
	assert.Equal(t, "What do you call a tiger that's sleeping? One word — tigurrrr!", joke.Reply)

	// Punctuation is part of the phrase.
	assert.Equal(t, Unknown, Classify("how are you").Category)
	assert.Equal(t, Unknown, Classify("tell me a joke!").Category)
}

func TestClassifyUnknownKeepsWhitespace(t *testing.T) {
	for _, in := range []string{"", "banana", " hello", "hello ", "exit\n", "\t", "EXİT", "Hİ"} {
		d := Classify(in)
		assert.Equal(t, Unknown, d.Category, "%q", in)
		assert.Equal(t, FallbackReply, d.Reply, "%q", in)
		assert.False(t, d.ShouldTerminate, "%q", in)
	}
}

func TestClassifyReportsFoldedUtterance(t *testing.T) {
	assert.Equal(t, "hey", Classify("Hey").Utterance)
	assert.Equal(t, " banana ", Classify(" BaNaNa ").Utterance)
}

func TestClassifyUsesFullUnicodeLowercasing(t *testing.T) {
	d := Classify("EXİT")
	assert.Equal(t, "exi\u0307t", d.Utterance)
	assert.False(t, d.ShouldTerminate)

	d = Classify("Hİ")
	assert.Equal(t, "hi\u0307", d.Utterance)
	assert.Equal(t, Unknown, d.Category)

	// ASCII capital I still folds to the greeting.
	assert.Equal(t, Greeting, Classify("HI").Category)
}

func TestClassifyOnlyExitTerminates(t *testing.T) {
	for _, r := range Rules() {
		for _, p := range r.Phrases {
			d := Classify(p)
			assert.Equal(t, r.Category, d.Category, p)
			assert.Equal(t, r.Category == Exit, d.ShouldTerminate, p)
		}
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	got := Rules()
	require.Len(t, got, 5)
	assert.Equal(t, Exit, got[0].Category)

	got[1].Phrases[0] = "mutated"
	got[1].Reply = "mutated"
	assert.Equal(t, Greeting, Classify("hello").Category)
	assert.Equal(t, greeting, Classify("hello").Reply)
}

func TestDecisionJSONUsesCategoryName(t *testing.T) {
	data, err := json.Marshal(Classify("tell me a joke"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"category":"joke"`)
	assert.Contains(t, string(data), `"shouldTerminate":false`)
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		Unknown:      "unknown",
		Exit:         "exit",
		Greeting:     "greeting",
		AIDefinition: "ai-definition",
		Status:       "status",
		Joke:         "joke",
		Category(99): "unknown",
	}
	for c, want := range cases {
		assert.Equal(t, want, c.String())
	}
}
