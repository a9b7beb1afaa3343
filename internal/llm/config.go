package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig
}

// BaseURL fields point the SDKs at a test server or a compatible gateway.
type (
	AnthropicConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}
	OpenAIConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}
	GeminiConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}
	OpenRouterConfig struct {
		APIKey  string
		Model   string
		BaseURL string
	}
)

// RetryConfig drives RetryProvider. MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// standardKeys are the vendor credential variables, checked in this order.
var standardKeys = []struct{ env, provider string }{
	{"GOOGLE_API_KEY", "gemini"},
	{"GEMINI_API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DefaultConfig is Gemini Flash with retries off.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
	}
}

// DiscoverConfig picks the first provider whose standard key variable is
// set. ok is false when none is.
func DiscoverConfig() (cfg Config, ok bool) {
	cfg = DefaultConfig()
	for _, k := range standardKeys {
		if v := os.Getenv(k.env); v != "" {
			cfg.Provider = k.provider
			*cfg.apiKey(k.provider) = v
			return cfg, true
		}
	}
	return Config{}, false
}

// ConfigFromEnv is DiscoverConfig (or DefaultConfig) with the CODEQUEST_*
// variables applied on top.
func ConfigFromEnv() (Config, error) {
	cfg, ok := DiscoverConfig()
	if !ok {
		cfg = DefaultConfig()
	}

	set := func(env string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	set("CODEQUEST_LLM_PROVIDER", &cfg.Provider)
	set("CODEQUEST_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	set("CODEQUEST_GEMINI_MODEL", &cfg.Gemini.Model)
	set("CODEQUEST_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	set("CODEQUEST_OPENAI_MODEL", &cfg.OpenAI.Model)
	set("CODEQUEST_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	set("CODEQUEST_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	set("CODEQUEST_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	set("CODEQUEST_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	set("CODEQUEST_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	if v := os.Getenv("CODEQUEST_LLM_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("CODEQUEST_LLM_MAX_ATTEMPTS: want a positive integer, got %q", v)
		}
		cfg.Retry.MaxAttempts = n
	}
	return cfg, nil
}

// Validate reports an unknown provider or a missing credential.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key := c.apiKey(c.Provider)
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("no API key for the %s provider: set %s", c.Provider, keyVars(c.Provider))
	}
	return nil
}

// apiKey points at the credential field of provider, or is nil for
// providers that have none.
func (c *Config) apiKey(provider string) *string {
	switch provider {
	case "gemini":
		return &c.Gemini.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

func keyVars(provider string) string {
	var vars []string
	for _, k := range standardKeys {
		if k.provider == provider {
			vars = append(vars, k.env)
		}
	}
	vars = append(vars, "CODEQUEST_"+strings.ToUpper(provider)+"_API_KEY")
	return strings.Join(vars, " or ")
}
