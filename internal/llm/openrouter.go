package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter attribution headers.
const (
	openRouterTitle   = "CodeQuest"
	openRouterReferer = "https://github.com/abhisek/codequest"
)

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter. Model IDs
// such as "google/gemini-2.0-flash-001" are sent untouched.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{Transport: attribution{next: http.DefaultTransport}}

	return &OpenRouterProvider{OpenAIProvider: newChatProvider("openrouter", config, cfg.Model)}, nil
}

// attribution adds the app identification headers OpenRouter ranks apps by.
type attribution struct {
	next http.RoundTripper
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", openRouterTitle)
	r.Header.Set("HTTP-Referer", openRouterReferer)
	return a.next.RoundTrip(r)
}
