package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterProvider_Generate(t *testing.T) {
	var header http.Header
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		path = r.URL.Path
		body := chatCompletion("Question: ok?\nChoices:\na) 1\nb) 2\nc) 3\nd) 4\nAnswer: a", "stop")
		body["model"] = "anthropic/claude-3-haiku"
		writeChat(w, http.StatusOK, body)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())

	resp, err := p.Generate(context.Background(), UserPrompt("x"))
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-3-haiku", resp.Model)
	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.Equal(t, openRouterTitle, header.Get("X-Title"))
	assert.Equal(t, openRouterReferer, header.Get("HTTP-Referer"))
	assert.Equal(t, "Bearer sk-or-test", header.Get("Authorization"))
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-001"})
	assert.Error(t, err)

	_, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "meta-llama/llama-3-8b"})
	require.NoError(t, err)
	assert.Equal(t, "meta-llama/llama-3-8b", p.ModelID())
}
