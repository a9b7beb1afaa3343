package challenge

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Challenge is one generated multiple-choice question ready for display.
// It is never mutated after Generate returns; a new question replaces it
// wholesale.
type Challenge struct {
	// Question is the prompt text, trimmed.
	Question string

	// Choices holds exactly 4 distinct options in display order.
	Choices []string

	// Answer is the text of the correct option. Always an element of Choices.
	Answer string

	// Topic is the topic the question was generated for.
	Topic Topic
}

// IsCorrect reports whether choice is the correct option text.
func (c *Challenge) IsCorrect(choice string) bool {
	return choice == c.Answer
}

// AnswerIndex returns the position of Answer in Choices, or -1.
func (c *Challenge) AnswerIndex() int {
	for i, ch := range c.Choices {
		if ch == c.Answer {
			return i
		}
	}
	return -1
}

// Topic is a learning path the player can pick.
type Topic int

const (
	TopicPython Topic = iota
	TopicAIML
	TopicSQL
	TopicDataScience
)

// AllTopics lists the topics in display order.
var AllTopics = []Topic{TopicPython, TopicAIML, TopicSQL, TopicDataScience}

var topicNames = map[Topic]string{
	TopicPython:      "Python",
	TopicAIML:        "AI/ML",
	TopicSQL:         "SQL",
	TopicDataScience: "Data Science",
}

var topicSlugs = map[Topic]string{
	TopicPython:      "python",
	TopicAIML:        "ai-ml",
	TopicSQL:         "sql",
	TopicDataScience: "data-science",
}

// String returns the display name, which is also the text interpolated
// into the prompt.
func (t Topic) String() string {
	if n, ok := topicNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Topic(%d)", int(t))
}

// Slug returns the command-line friendly name.
func (t Topic) Slug() string {
	return topicSlugs[t]
}

// Valid reports whether t is one of AllTopics.
func (t Topic) Valid() bool {
	_, ok := topicNames[t]
	return ok
}

var folder = cases.Fold()

// ParseTopic resolves a display name (case-insensitively) or a slug.
func ParseTopic(s string) (Topic, error) {
	want := folder.String(strings.TrimSpace(s))
	for _, t := range AllTopics {
		if folder.String(t.String()) == want || t.Slug() == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown topic %q (want one of: %s)", s, strings.Join(TopicSlugs(), ", "))
}

// TopicSlugs returns the slugs of AllTopics in display order.
func TopicSlugs() []string {
	out := make([]string, len(AllTopics))
	for i, t := range AllTopics {
		out[i] = t.Slug()
	}
	return out
}
