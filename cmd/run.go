package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/codequest/internal/app"
	"github.com/abhisek/codequest/internal/challenge"
	"github.com/abhisek/codequest/internal/llm"
	"github.com/abhisek/codequest/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	topic, err := resolveTopic(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// stderr belongs to the terminal UI while it runs.
	logFile, err := openLogFile(logFilePath(dbPath))
	if err != nil {
		return err
	}
	defer logFile.Close()
	debug, _ := cmd.Flags().GetBool("debug")
	slog.SetDefault(newLogger(logFile, debug))

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen, err := newGenerator(ctx, st.EventRepo())
	if err != nil {
		return err
	}

	return app.Run(ctx, app.Options{
		Generator: gen,
		Topic:     topic,
	})
}

// newGenerator builds the challenge generator from the environment. A
// missing or invalid provider setup is not fatal: every generation then
// fails and the quiz shows its load-failure notice.
func newGenerator(ctx context.Context, eventRepo store.EventRepo) (*challenge.LLMGenerator, error) {
	cfg, err := challenge.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("challenge config: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		slog.Warn("LLM provider not configured; challenges will fail to load", "error", err)
		provider = llm.NewUnconfiguredProvider(err)
	} else {
		slog.Info("LLM provider ready", "model", provider.ModelID())
	}

	return challenge.New(provider, cfg), nil
}
