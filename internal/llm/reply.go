package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Normalized Response.StopReason values.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// reply is what an adapter pulled out of its SDK response.
type reply struct {
	provider string
	text     string
	usage    Usage
	model    string
	stop     string
}

// finish turns an adapter reply into a Response. An empty reply is
// ErrMaxTokensExceeded when the model hit its cap and ErrInvalidResponse
// otherwise. Structured replies must match req.Schema.
func finish(req Request, r reply) (*Response, error) {
	if strings.TrimSpace(r.text) == "" {
		if r.stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{}
		}
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("empty reply from %s", r.provider)}
	}

	content := json.RawMessage(r.text)
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}

	if r.usage.TotalTokens == 0 {
		r.usage.TotalTokens = r.usage.InputTokens + r.usage.OutputTokens
	}
	if r.stop == "" {
		r.stop = StopEnd
	}

	return &Response{
		Content:    content,
		Usage:      r.usage,
		Model:      r.model,
		StopReason: r.stop,
	}, nil
}

// classifyStatus maps an HTTP status from an SDK error to the typed
// transport errors. Status 0 means the SDK gave no status.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
