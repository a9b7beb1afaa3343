package challenge

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// Mode selects the reply format requested from the model.
type Mode string

const (
	// ModeText asks for the five-part plain-text reply.
	ModeText Mode = "text"

	// ModeJSON asks for a structured reply matching ChallengeSchema.
	ModeJSON Mode = "json"
)

// ParseMode accepts "text" or "json"; empty means ModeText.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeText:
		return ModeText, nil
	case ModeJSON:
		return ModeJSON, nil
	}
	return "", fmt.Errorf("unknown challenge format %q (want text or json)", s)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Mode is the reply format. Default ModeText.
	Mode Mode

	// Validators run in order on every built challenge; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the reply.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds a single generation. Zero leaves it to the caller's
	// context and the transport.
	Timeout time.Duration

	// Rand shuffles the options. Nil uses the package-level source.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Mode: ModeText,
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctChoicesValidator{},
		},
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

// ConfigFromEnv applies CODEQUEST_CHALLENGE_FORMAT and CODEQUEST_LLM_TIMEOUT
// to DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	mode, err := ParseMode(os.Getenv("CODEQUEST_CHALLENGE_FORMAT"))
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode

	if v := os.Getenv("CODEQUEST_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("CODEQUEST_LLM_TIMEOUT must be a non-negative duration, got %q", v)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
