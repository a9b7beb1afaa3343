package llm

import "context"

// Purpose labels stored with each logged call.
const (
	PurposeChallenge = "challenge-gen"
	PurposeAsk       = "ask"
	PurposeUnknown   = "unknown"
)

type purposeKey struct{}

// WithPurpose labels the LLM calls made under ctx.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
