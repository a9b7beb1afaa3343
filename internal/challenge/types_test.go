package challenge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicNames(t *testing.T) {
	var names []string
	for _, tp := range AllTopics {
		names = append(names, tp.String())
	}
	assert.Equal(t, []string{"Python", "AI/ML", "SQL", "Data Science"}, names)
	assert.Equal(t, []string{"python", "ai-ml", "sql", "data-science"}, TopicSlugs())
}

func TestParseTopic(t *testing.T) {
	tests := []struct {
		in   string
		want Topic
	}{
		{"Python", TopicPython},
		{"python", TopicPython},
		{"  PYTHON ", TopicPython},
		{"ai/ml", TopicAIML},
		{"ai-ml", TopicAIML},
		{"sql", TopicSQL},
		{"data science", TopicDataScience},
		{"data-science", TopicDataScience},
	}
	for _, tt := range tests {
		got, err := ParseTopic(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseTopic("cobol")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "data-science"))
}

func TestTopicValid(t *testing.T) {
	assert.True(t, TopicSQL.Valid())
	assert.False(t, Topic(42).Valid())
	assert.Equal(t, "Topic(42)", Topic(42).String())
}

func TestChallengeHelpers(t *testing.T) {
	c := &Challenge{Question: "q", Choices: []string{"w", "x", "y", "z"}, Answer: "y"}

	assert.True(t, c.IsCorrect("y"))
	assert.False(t, c.IsCorrect("x"))
	assert.Equal(t, 2, c.AnswerIndex())
}

func TestBuildPrompt(t *testing.T) {
	want := "Generate a beginner-friendly multiple-choice coding challenge for Data Science. " +
		"Format response exactly as:\n" +
		"Question: <your question>\n" +
		"Choices:\n" +
		"a) <option1>\n" +
		"b) <option2>\n" +
		"c) <option3>\n" +
		"d) <option4>\n" +
		"Answer: <correct choice letter>"
	assert.Equal(t, want, BuildPrompt(TopicDataScience))
	assert.Equal(t, BuildPrompt(TopicPython), BuildPrompt(TopicPython))
}
