package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/codequest/internal/challenge"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the learning paths",
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable("Topic", "Slug (--topic)")
		for _, topic := range challenge.AllTopics {
			t.Row(topic.String(), topic.Slug())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	},
}
