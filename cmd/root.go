package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/codequest/internal/challenge"
	"github.com/abhisek/codequest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codequest",
	Short: "Gamified coding quiz in the terminal",
	Long: `CodeQuest asks an LLM for beginner-friendly multiple-choice coding
challenges on Python, AI/ML, SQL or Data Science. Solve one to earn 10 XP;
every 100 XP is a new level.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotEnv(".env"); err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		slog.SetDefault(newLogger(os.Stderr, debug))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEQUEST_DB env var)")
	rootCmd.PersistentFlags().StringP("topic", "t", challenge.TopicPython.Slug(), "Starting topic: python, ai-ml, sql or data-science")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level, including raw model replies")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODEQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveTopic parses the --topic flag.
func resolveTopic(cmd *cobra.Command) (challenge.Topic, error) {
	v, _ := cmd.Flags().GetString("topic")
	return challenge.ParseTopic(v)
}
