package challenge

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoChallenge is the "no challenge" result. Every Generate failure
// wraps it.
var ErrNoChallenge = errors.New("no challenge")

var (
	questionRe = regexp.MustCompile(`(?s)Question:\s*(.*?)\s*Choices:`)
	optionRe   = regexp.MustCompile(`(?m)^[ \t]*[a-d]\)[ \t]*(.*)$`)
	answerRe   = regexp.MustCompile(`Answer:\s*([a-dA-D])`)
)

// ParseError reports a reply that does not have the expected shape.
type ParseError struct {
	Missing string // "question", "choices", "answer" or "reply"
	Found   int    // options found, when Missing is "choices"
}

func (e *ParseError) Error() string {
	if e.Missing == "choices" {
		return fmt.Sprintf("parse reply: expected 4 choices, found %d", e.Found)
	}
	return fmt.Sprintf("parse reply: missing %s", e.Missing)
}

func (e *ParseError) Unwrap() error { return ErrNoChallenge }

// parsed is a reply broken into parts, before shuffling.
type parsed struct {
	Question string
	Options  []string
	Letter   byte // 'a'..'d'
}

// correct returns the option the answer letter points at.
func (p parsed) correct() string {
	return p.Options[p.Letter-'a']
}

// parseText extracts question, options and answer letter from a
// five-part plain-text reply.
func parseText(reply string) (parsed, error) {
	text := strings.TrimSpace(reply)
	if text == "" {
		return parsed{}, &ParseError{Missing: "reply"}
	}

	qm := questionRe.FindStringSubmatchIndex(text)
	if qm == nil {
		return parsed{}, &ParseError{Missing: "question"}
	}
	question := strings.TrimSpace(text[qm[2]:qm[3]])

	// Options are lines in the choices block that start with a label.
	var options []string
	for _, m := range optionRe.FindAllStringSubmatch(text[qm[1]:], -1) {
		options = append(options, strings.TrimSpace(m[1]))
	}
	if len(options) != 4 {
		return parsed{}, &ParseError{Missing: "choices", Found: len(options)}
	}

	am := answerRe.FindStringSubmatch(text)
	if am == nil {
		return parsed{}, &ParseError{Missing: "answer"}
	}

	return parsed{
		Question: question,
		Options:  options,
		Letter:   strings.ToLower(am[1])[0],
	}, nil
}

// jsonReply is the ModeJSON reply shape (see ChallengeSchema).
type jsonReply struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

// parseJSON decodes a structured reply into the same parts as parseText.
func parseJSON(reply []byte) (parsed, error) {
	var raw jsonReply
	if err := json.Unmarshal(reply, &raw); err != nil {
		return parsed{}, fmt.Errorf("%w: decode reply: %w", ErrNoChallenge, err)
	}

	question := strings.TrimSpace(raw.Question)
	if question == "" {
		return parsed{}, &ParseError{Missing: "question"}
	}
	if len(raw.Choices) != 4 {
		return parsed{}, &ParseError{Missing: "choices", Found: len(raw.Choices)}
	}
	letter := strings.ToLower(strings.TrimSpace(raw.Answer))
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'd' {
		return parsed{}, &ParseError{Missing: "answer"}
	}

	options := make([]string, len(raw.Choices))
	for i, c := range raw.Choices {
		options[i] = strings.TrimSpace(c)
	}
	return parsed{Question: question, Options: options, Letter: letter[0]}, nil
}
