package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/codequest/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printFiveReply = `Question: What prints 5?
Choices:
a) print(5)
b) echo 5
c) puts 5
d) say 5
Answer: a`

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = seeded(1)
	return cfg
}

func TestGenerate_WellFormed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(printFiveReply))
	gen := New(mock, testConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)

	assert.Equal(t, "What prints 5?", c.Question)
	assert.Equal(t, "print(5)", c.Answer)
	assert.Equal(t, TopicPython, c.Topic)
	assert.ElementsMatch(t, []string{"print(5)", "echo 5", "puts 5", "say 5"}, c.Choices)
	assert.Contains(t, c.Choices, c.Answer)
}

func TestGenerate_SendsPromptAndPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(printFiveReply))
	gen := New(mock, testConfig())

	_, err := gen.Generate(context.Background(), TopicSQL)
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, BuildPrompt(TopicSQL), mock.LastPrompt())
	assert.Equal(t, 512, mock.Calls[0].MaxTokens)
	assert.Nil(t, mock.Calls[0].Schema)
}

func TestGenerate_UppercaseAnswerLetter(t *testing.T) {
	reply := strings.Replace(printFiveReply, "Answer: a", "Answer: C", 1)
	gen := New(llm.NewMockProvider(llm.MockText(reply)), testConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)
	assert.Equal(t, "puts 5", c.Answer)
}

func TestGenerate_SurroundingChatter(t *testing.T) {
	reply := "Sure! Here is your challenge.\n\n" + printFiveReply + "\n\nGood luck!"
	gen := New(llm.NewMockProvider(llm.MockText(reply)), testConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)
	assert.Equal(t, "What prints 5?", c.Question)
	assert.Equal(t, "print(5)", c.Answer)
}

func TestGenerate_MultilineQuestion(t *testing.T) {
	reply := `Question: What does this print?

    x = [1, 2, 3]
    print(len(x))
Choices:
a) 1
b) 2
c) 3
d) 4
Answer: c`
	gen := New(llm.NewMockProvider(llm.MockText(reply)), testConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.Question, "What does this print?"))
	assert.True(t, strings.HasSuffix(c.Question, "print(len(x))"))
	assert.Equal(t, "3", c.Answer)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply llm.MockResponse
	}{
		{"provider error", llm.MockError(&llm.ErrProviderUnavailable{Err: errors.New("down")})},
		{"not configured", llm.MockError(llm.ErrNotConfigured)},
		{"empty reply", llm.MockText("   \n ")},
		{"missing question", llm.MockText("Choices:\na) 1\nb) 2\nc) 3\nd) 4\nAnswer: a")},
		{"three choices", llm.MockText("Question: q\nChoices:\na) 1\nb) 2\nc) 3\nAnswer: a")},
		{"missing answer", llm.MockText("Question: q\nChoices:\na) 1\nb) 2\nc) 3\nd) 4")},
		{"answer letter out of range", llm.MockText("Question: q\nChoices:\na) 1\nb) 2\nc) 3\nd) 4\nAnswer: e")},
		{"duplicate choices", llm.MockText("Question: q\nChoices:\na) 1\nb) 1\nc) 3\nd) 4\nAnswer: a")},
		{"empty choice", llm.MockText("Question: q\nChoices:\na) 1\nb)\nc) 3\nd) 4\nAnswer: a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(llm.NewMockProvider(tt.reply), testConfig())

			c, err := gen.Generate(context.Background(), TopicAIML)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoChallenge)
		})
	}
}

func TestGenerate_ErrorKinds(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockText("Question: q\nChoices:\na) 1\nAnswer: a")), testConfig())
	_, err := gen.Generate(context.Background(), TopicPython)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "choices", pe.Missing)
	assert.Equal(t, 1, pe.Found)

	gen = New(llm.NewMockProvider(llm.MockText("Question: q\nChoices:\na) x\nb) x\nc) y\nd) z\nAnswer: a")), testConfig())
	_, err = gen.Generate(context.Background(), TopicPython)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "distinct-choices", ve.Validator)

	gen = New(llm.NewMockProvider(llm.MockError(llm.ErrNotConfigured)), testConfig())
	_, err = gen.Generate(context.Background(), TopicPython)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestGenerate_ShuffleIsPermutation(t *testing.T) {
	original := []string{"print(5)", "echo 5", "puts 5", "say 5"}
	orders := map[string]bool{}

	for seed := range uint64(40) {
		cfg := DefaultConfig()
		cfg.Rand = seeded(seed)
		gen := New(llm.NewMockProvider(llm.MockText(printFiveReply)), cfg)

		c, err := gen.Generate(context.Background(), TopicPython)
		require.NoError(t, err)
		require.Len(t, c.Choices, 4)
		assert.ElementsMatch(t, original, c.Choices)
		assert.Equal(t, "print(5)", c.Answer)
		orders[strings.Join(c.Choices, "|")] = true
	}

	assert.Greater(t, len(orders), 1, "shuffle never changed the order")
}

func TestGenerate_SameSeedSameOrder(t *testing.T) {
	run := func() []string {
		cfg := DefaultConfig()
		cfg.Rand = seeded(7)
		gen := New(llm.NewMockProvider(llm.MockText(printFiveReply)), cfg)
		c, err := gen.Generate(context.Background(), TopicPython)
		require.NoError(t, err)
		return c.Choices
	}
	assert.True(t, slices.Equal(run(), run()))
}

func TestGenerate_DefaultRandSource(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockText(printFiveReply)), DefaultConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)
	assert.Contains(t, c.Choices, c.Answer)
}

func TestGenerate_JSONMode(t *testing.T) {
	reply, _ := json.Marshal(map[string]any{
		"question": "Which clause filters groups?",
		"choices":  []string{"WHERE", "HAVING", "ORDER BY", "LIMIT"},
		"answer":   "B",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: reply})
	cfg := testConfig()
	cfg.Mode = ModeJSON
	gen := New(mock, cfg)

	c, err := gen.Generate(context.Background(), TopicSQL)
	require.NoError(t, err)
	assert.Equal(t, "Which clause filters groups?", c.Question)
	assert.Equal(t, "HAVING", c.Answer)
	assert.ElementsMatch(t, []string{"WHERE", "HAVING", "ORDER BY", "LIMIT"}, c.Choices)
	assert.Same(t, ChallengeSchema, mock.Calls[0].Schema)
	assert.Contains(t, mock.LastPrompt(), "JSON object")
}

func TestGenerate_JSONModeSchemaViolation(t *testing.T) {
	reply := []byte(`{"question":"q","choices":["a","b","c"],"answer":"a"}`)
	cfg := testConfig()
	cfg.Mode = ModeJSON
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: reply}), cfg)

	_, err := gen.Generate(context.Background(), TopicSQL)
	assert.ErrorIs(t, err, ErrNoChallenge)
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestGenerate_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond
	gen := New(blockingProvider{}, cfg)

	_, err := gen.Generate(context.Background(), TopicPython)
	assert.ErrorIs(t, err, ErrNoChallenge)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerate_EndToEndScenario(t *testing.T) {
	reply := "Question: What prints 5?\nChoices:\na) print(5)\nb) echo(5)\nc) show(5)\nd) display(5)\nAnswer: a"
	gen := New(llm.NewMockProvider(llm.MockText(reply)), DefaultConfig())

	c, err := gen.Generate(context.Background(), TopicPython)
	require.NoError(t, err)
	assert.Equal(t, "What prints 5?", c.Question)
	assert.ElementsMatch(t, []string{"print(5)", "echo(5)", "show(5)", "display(5)"}, c.Choices)
	assert.Equal(t, "print(5)", c.Answer)
}
