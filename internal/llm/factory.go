package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/codequest/internal/store"
)

var constructors = map[string]func(context.Context, Config) (Provider, error){
	"gemini": func(ctx context.Context, c Config) (Provider, error) {
		return NewGeminiProvider(ctx, c.Gemini)
	},
	"openai": func(_ context.Context, c Config) (Provider, error) {
		return NewOpenAIProvider(c.OpenAI)
	},
	"anthropic": func(_ context.Context, c Config) (Provider, error) {
		return NewAnthropicProvider(c.Anthropic)
	},
	"openrouter": func(_ context.Context, c Config) (Provider, error) {
		return NewOpenRouterProvider(c.OpenRouter)
	},
	"mock": func(context.Context, Config) (Provider, error) {
		return NewMockProvider(), nil
	},
}

// NewProvider builds the configured backend and wraps it so that every
// attempt is logged and failed attempts are retried. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	build, ok := constructors[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	base, err := build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, cfg.Provider, events), cfg.Retry), nil
}

// NewProviderFromEnv is NewProvider over ConfigFromEnv. A missing
// credential is an error so the caller can fall back to
// NewUnconfiguredProvider.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}
