package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codequest/internal/store"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTopicsCommand(t *testing.T) {
	out := execute(t, "topics")
	for _, want := range []string{"Python", "AI/ML", "ai-ml", "Data Science", "data-science"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	assert.Regexp(t, `^codequest \S+ \(go`, execute(t, "version"))
}

func TestLLMListAndStats(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "codequest.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(context.Background(), store.LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "challenge-gen",
		InputTokens:  50,
		OutputTokens: 80,
		LatencyMs:    200,
		Success:      true,
	}))
	require.NoError(t, s.Close())

	out := execute(t, "llm", "list", "--db", dbPath)
	assert.Contains(t, out, "challenge-gen")
	assert.Contains(t, out, "gemini-2.0-flash")

	out = execute(t, "llm", "stats", "--db", dbPath)
	assert.Contains(t, out, "Usage by Purpose")
	assert.Contains(t, out, "Estimated Cost (USD)")
}
