package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var (
	okReply   = MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	downReply = MockError(&ErrProviderUnavailable{Err: errors.New("down")})
	badReply  = MockError(&ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")})
)

func TestRetryProvider_Generate(t *testing.T) {
	cases := []struct {
		name      string
		replies   []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{okReply}, false, 1},
		{"transient then success", []MockResponse{downReply, okReply}, false, 2},
		{"all attempts fail", []MockResponse{downReply, downReply, downReply, okReply}, true, 3},
		{"invalid reply retried once", []MockResponse{badReply, badReply, okReply}, true, 2},
		{"invalid then transient", []MockResponse{badReply, downReply, okReply}, false, 3},
		{"rate limit honours retry-after", []MockResponse{
			MockError(&ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}), okReply,
		}, false, 2},
		{"truncation is final", []MockResponse{
			MockError(&ErrMaxTokensExceeded{}), okReply,
		}, true, 1},
		{"not configured is final", []MockResponse{MockError(ErrNotConfigured), okReply}, true, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := NewMockProvider(tc.replies...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
			}
			assert.Equal(t, tc.wantCalls, mock.CallCount())
		})
	}
}

func TestRetryProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(downReply, okReply)
	cfg := fastRetry()
	cfg.InitialWait, cfg.MaxWait = time.Hour, time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestWithRetry_SingleAttempt(t *testing.T) {
	mock := NewMockProvider()
	assert.Equal(t, Provider(mock), WithRetry(mock, RetryConfig{MaxAttempts: 1}))
	assert.Equal(t, "mock", WithRetry(mock, fastRetry()).ModelID())
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}
	down := errors.New("down")

	first := cfg.delay(1, down)
	assert.GreaterOrEqual(t, first, 80*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	capped := cfg.delay(5, down)
	assert.LessOrEqual(t, capped, 360*time.Millisecond)
	assert.GreaterOrEqual(t, capped, 240*time.Millisecond)

	rl := &ErrRateLimit{RetryAfter: 2 * time.Second}
	assert.Equal(t, 2*time.Second, cfg.delay(1, rl))
}
