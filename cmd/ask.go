package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/codequest/internal/llm"
	"github.com/abhisek/codequest/internal/session"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Play the quiz in plain line mode (no TUI)",
	Long: `Generate challenges and answer them over stdin/stdout.

Answer with a letter (a-d), a number (1-4) or the option text. Wrong answers
can be retried; "q" quits. Calls are recorded in the LLM event log with
purpose "ask".`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntP("count", "n", 5, "Number of challenges to solve (0 = until you quit)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	count, _ := cmd.Flags().GetInt("count")

	topic, err := resolveTopic(cmd)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	gen, err := newGenerator(ctx, s.EventRepo())
	if err != nil {
		return err
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeAsk)

	sess := session.New(gen)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Challenge\n", topic)
	_ = sess.Start(ctx, topic)

	return askLoop(ctx, sess, cmd.InOrStdin(), out, count)
}

// askLoop drives sess from line input until count challenges are solved,
// input ends, or the player quits.
func askLoop(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, count int) error {
	scanner := bufio.NewScanner(in)
	state := sess.State

	for count <= 0 || state.Completed < count {
		switch state.Phase {
		case session.PhaseLoadFailed:
			fmt.Fprintln(out, session.LoadFailedNotice)
			fmt.Fprint(out, "Press Enter to retry or q to quit: ")
			if !scanner.Scan() || isQuit(scanner.Text()) {
				return summarize(out, state)
			}
			_ = sess.Retry(ctx)
			continue

		case session.PhaseCorrect:
			if count > 0 && state.Completed+1 >= count {
				return summarize(out, state)
			}
			_ = sess.Advance(ctx)
			continue
		}

		if state.Challenge == nil {
			return summarize(out, state)
		}

		if state.Phase == session.PhaseAwaiting {
			fmt.Fprintf(out, "\nChallenge %d: %s\n", state.ChallengeNumber(), state.Challenge.Question)
			for i, c := range state.Challenge.Choices {
				fmt.Fprintf(out, "  %c) %s\n", 'a'+i, c)
			}
		}

		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return summarize(out, state)
		}
		line := strings.TrimSpace(scanner.Text())
		if isQuit(line) {
			return summarize(out, state)
		}

		i := choiceIndex(line, len(state.Challenge.Choices))
		var submitErr error
		if i >= 0 {
			_, submitErr = sess.SubmitIndex(i)
		} else {
			_, submitErr = sess.Submit(line)
		}
		if submitErr != nil {
			return submitErr
		}

		fmt.Fprintln(out, state.Feedback)
		if state.AnswerCorrect {
			stats := session.StatsFor(state.Completed + 1)
			fmt.Fprintf(out, "XP: %d  Level: %d\n", stats.XP, stats.Level)
		}
	}

	return summarize(out, state)
}

// choiceIndex maps "a"-"d" or "1"-"4" to a 0-based index, or -1.
func choiceIndex(s string, n int) int {
	if len(s) == 1 {
		if c := s[0] | 0x20; c >= 'a' && int(c-'a') < n {
			return int(c - 'a')
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 1 && v <= n {
		return v - 1
	}
	return -1
}

func isQuit(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "q" || s == "quit"
}

// summarize prints the final tally. A solved challenge that was not
// advanced past still counts.
func summarize(out io.Writer, state *session.State) error {
	solved := state.Completed
	if state.Phase == session.PhaseCorrect {
		solved++
	}
	stats := session.StatsFor(solved)
	fmt.Fprintf(out, "\nSolved %d  XP: %d  Level: %d\n", stats.Completed, stats.XP, stats.Level)
	return nil
}
