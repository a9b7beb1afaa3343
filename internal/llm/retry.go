package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p. With MaxAttempts <= 1 p is returned as is.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts <= 1 {
		return p
	}
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	// A malformed reply is worth one more try, not a full backoff cycle.
	invalidLeft := 1

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch retryClass(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if invalidLeft == 0 {
				return nil, err
			}
			invalidLeft--
		}
		if attempt >= r.cfg.MaxAttempts {
			return nil, err
		}

		wait := r.cfg.delay(attempt, err)
		slog.DebugContext(ctx, "retrying LLM request",
			"purpose", PurposeFrom(ctx), "attempt", attempt, "wait", wait, "error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

const (
	retryAlways = iota
	retryOnce
	retryNever
)

func retryClass(err error) int {
	var capped *ErrMaxTokensExceeded
	var invalid *ErrInvalidResponse
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, ErrNotConfigured),
		errors.As(err, &capped):
		return retryNever
	case errors.As(err, &invalid):
		return retryOnce
	}
	return retryAlways
}

// delay is the wait after the given 1-based attempt failed with err. A
// provider supplied Retry-After wins; otherwise the backoff is capped at
// MaxWait with 20% jitter.
func (c RetryConfig) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt-1))
	base = math.Min(base, float64(c.MaxWait))
	jittered := base * (0.8 + 0.4*rand.Float64())
	return time.Duration(math.Max(jittered, 0))
}
