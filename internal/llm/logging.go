package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/codequest/internal/store"
)

// LoggingProvider writes one slog record and one event log row per call.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps p. events may be nil to log to slog only.
func WithLogging(p Provider, providerName string, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: providerName, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	level, msg := slog.LevelDebug, "LLM request"
	attrs := []slog.Attr{
		slog.String("provider", ev.Provider),
		slog.String("model", ev.Model),
		slog.String("purpose", ev.Purpose),
		slog.Int64("latency_ms", ev.LatencyMs),
		slog.Int("input_tokens", ev.InputTokens),
		slog.Int("output_tokens", ev.OutputTokens),
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		level, msg = slog.LevelWarn, "LLM request failed"
		attrs = append(attrs, slog.Any("error", err))
	}
	slog.LogAttrs(ctx, level, msg, attrs...)

	if l.events != nil {
		if werr := l.events.AppendLLMRequest(ctx, ev); werr != nil {
			slog.WarnContext(ctx, "could not record LLM request", "error", werr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// transcript renders req as labelled blocks for the event log.
func transcript(req Request) string {
	var blocks []string
	if req.System != "" {
		blocks = append(blocks, "[system]\n"+req.System)
	}
	for _, m := range req.Messages {
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", m.Role, m.Content))
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			blocks = append(blocks, fmt.Sprintf("[schema: %s]\n%s", req.Schema.Name, def))
		}
	}
	return strings.Join(blocks, "\n\n")
}
