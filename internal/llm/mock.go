package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply. Err wins over Content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

func MockText(text string) MockResponse {
	return MockResponse{Content: json.RawMessage(text)}
}

func MockError(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider replays canned replies in order and records every request.
// Replies go through the same empty-reply and schema checks as the real
// adapters. Once the queue is drained every call is ErrProviderUnavailable.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	var next MockResponse
	drained := len(m.queue) == 0
	if !drained {
		next, m.queue = m.queue[0], m.queue[1:]
	}
	m.mu.Unlock()

	switch {
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case drained:
		return nil, &ErrProviderUnavailable{}
	case next.Err != nil:
		return nil, next.Err
	}
	return finish(req, reply{
		provider: "mock",
		text:     string(next.Content),
		usage:    next.Usage,
		model:    "mock",
	})
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastPrompt is the final message of the most recent request.
func (m *MockProvider) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return ""
	}
	msgs := m.Calls[len(m.Calls)-1].Messages
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Content
}
