package challenge

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/codequest/internal/llm"
)

// Generator produces challenges.
type Generator interface {
	// Generate builds one challenge for topic. Any error wraps
	// ErrNoChallenge.
	Generate(ctx context.Context, topic Topic) (*Challenge, error)
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	randMu sync.Mutex // guards config.Rand
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.Mode == "" {
		cfg.Mode = ModeText
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate sends one prompt, parses the reply, shuffles the options and
// runs the validators.
func (g *LLMGenerator) Generate(ctx context.Context, topic Topic) (*Challenge, error) {
	if llm.PurposeFrom(ctx) == llm.PurposeUnknown {
		ctx = llm.WithPurpose(ctx, llm.PurposeChallenge)
	}
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.UserPrompt(buildPrompt(topic, g.config.Mode))
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature
	if g.config.Mode == ModeJSON {
		req.Schema = ChallengeSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		slog.Warn("challenge generation failed", "topic", topic.String(), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoChallenge, err)
	}

	reply := resp.Text()
	slog.Debug("challenge reply", "topic", topic.String(), "reply", reply)

	var p parsed
	if g.config.Mode == ModeJSON {
		p, err = parseJSON([]byte(reply))
	} else {
		p, err = parseText(reply)
	}
	if err != nil {
		slog.Warn("challenge extraction failed", "topic", topic.String(), "error", err)
		return nil, err
	}

	c := &Challenge{
		Question: p.Question,
		Choices:  p.Options,
		Answer:   p.correct(),
		Topic:    topic,
	}
	g.shuffle(c.Choices)

	for _, v := range g.config.Validators {
		if verr := v.Validate(c); verr != nil {
			slog.Warn("challenge rejected", "topic", topic.String(), "error", verr)
			return nil, verr
		}
	}

	return c, nil
}

func (g *LLMGenerator) shuffle(s []string) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if g.config.Rand == nil {
		rand.Shuffle(len(s), swap)
		return
	}
	g.randMu.Lock()
	defer g.randMu.Unlock()
	g.config.Rand.Shuffle(len(s), swap)
}
