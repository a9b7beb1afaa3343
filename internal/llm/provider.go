package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the core abstraction for talking to a text-generation service.
type Provider interface {
	// Generate sends a prompt and returns the model's reply.
	// When req.Schema is set the provider asks for JSON conforming to it and
	// validates the reply before returning. Otherwise Content holds the raw
	// reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the optional system prompt.
	System string

	// Messages is the conversation. Challenge generation sends a single
	// user message.
	Messages []Message

	// Schema switches the provider into structured-output mode.
	Schema *Schema

	// MaxTokens caps the reply length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero leaves the provider
	// default.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(prompt string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "coding-challenge".
	Name string

	// Description is sent to the model alongside the schema.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the validated JSON object in structured mode, or the raw
	// reply text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the reply as trimmed text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
