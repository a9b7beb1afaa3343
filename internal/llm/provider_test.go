package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Replays(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockText("  Question: x\n"),
		MockError(&ErrRateLimit{}),
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "first"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(first.Content))
	assert.Equal(t, Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}, first.Usage)
	assert.Equal(t, StopEnd, first.StopReason)

	second, err := mock.Generate(ctx, UserPrompt("make one"))
	require.NoError(t, err)
	assert.Equal(t, "Question: x", second.Text())
	assert.Equal(t, "make one", mock.LastPrompt())

	_, err = mock.Generate(ctx, UserPrompt("third"))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(ctx, UserPrompt("drained"))
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
	assert.Equal(t, "mock", mock.ModelID())
}

func TestMockProvider_Checks(t *testing.T) {
	_, err := NewMockProvider(MockText(" \n")).Generate(context.Background(), UserPrompt("x"))
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewMockProvider(MockText("ok")).Generate(ctx, UserPrompt("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPurposeFrom(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, PurposeUnknown, PurposeFrom(ctx))
	assert.Equal(t, PurposeAsk, PurposeFrom(WithPurpose(ctx, PurposeAsk)))
	assert.Equal(t, PurposeUnknown, PurposeFrom(WithPurpose(ctx, "")))
}

func TestResponse_Text(t *testing.T) {
	var nilResp *Response
	assert.Empty(t, nilResp.Text())
	assert.Equal(t, "hi", (&Response{Content: json.RawMessage("\n hi \n")}).Text())
}

func TestUnconfiguredProvider(t *testing.T) {
	p := NewUnconfiguredProvider(errors.New("no API key found"))

	_, err := p.Generate(context.Background(), UserPrompt("anything"))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "no API key found")
	assert.Equal(t, "none", p.ModelID())

	_, err = NewUnconfiguredProvider(nil).Generate(context.Background(), UserPrompt("x"))
	assert.Equal(t, ErrNotConfigured, err)
}
