package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned by the placeholder provider used when no
// credential was found at startup. The application still runs; every
// generation fails until a key is configured.
var ErrNotConfigured = errors.New("LLM provider not configured")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema, or no content at all.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// rejected the request (bad credential included).
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the reply was truncated at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// unconfiguredProvider stands in when no credential is available.
type unconfiguredProvider struct {
	reason error
}

// NewUnconfiguredProvider returns a Provider whose every call fails with
// ErrNotConfigured wrapping reason.
func NewUnconfiguredProvider(reason error) Provider {
	return &unconfiguredProvider{reason: reason}
}

func (p *unconfiguredProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	if p.reason == nil {
		return nil, ErrNotConfigured
	}
	return nil, fmt.Errorf("%w: %v", ErrNotConfigured, p.reason)
}

func (p *unconfiguredProvider) ModelID() string { return "none" }
