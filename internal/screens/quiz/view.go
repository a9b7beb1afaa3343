package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/session"
	"github.com/abhisek/codequest/internal/ui/components"
	"github.com/abhisek/codequest/internal/ui/layout"
	"github.com/abhisek/codequest/internal/ui/theme"
)

const (
	sidebarWidth        = 38
	compactSidebarWidth = 30
)

func (s *QuizScreen) View(width, height int) string {
	sideW := sidebarWidth
	if layout.IsCompactWidth(width) {
		sideW = compactSidebarWidth
	}
	mainW := width - sideW - 1
	if mainW < 20 {
		mainW = 20
	}

	sidebar := lipgloss.NewStyle().
		Width(sideW).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Padding(1, 1).
		Render(s.renderSidebar(sideW - 4))

	main := lipgloss.NewStyle().
		Width(mainW).
		Height(height).
		Padding(1, 2).
		Render(s.renderMain(mainW - 6))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func (s *QuizScreen) renderSidebar(width int) string {
	stats := s.sess.State.Stats()
	heading := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(heading.Render("Choose Your Learning Path"))
	b.WriteString("\n\n")
	b.WriteString(s.topics.View())
	b.WriteString("\n")

	b.WriteString(heading.Render("Player Stats"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("XP: %d", stats.XP)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Level: %d", stats.Level)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", session.XPPerLevel-stats.XPToNextLevel(), session.XPPerLevel, width)
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Unlock more topics by leveling up!"))

	return b.String()
}

func (s *QuizScreen) renderMain(width int) string {
	state := s.sess.State

	var b strings.Builder
	if state.Phase != session.PhaseIdle {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(state.Topic.String() + " Challenge"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)))
		b.WriteString("\n\n")
	}

	switch state.Phase {
	case session.PhaseIdle:
		b.WriteString(theme.Hint.Render("Pick a topic and press Enter to begin."))

	case session.PhaseLoading:
		b.WriteString(s.spinner.View())
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Generating challenge..."))

	case session.PhaseLoadFailed:
		b.WriteString(theme.Notice.Render(session.LoadFailedNotice))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press R to retry or pick another topic."))

	default:
		b.WriteString(s.renderChallenge(width))
	}

	return b.String()
}

func (s *QuizScreen) renderChallenge(width int) string {
	state := s.sess.State

	var b strings.Builder
	question := fmt.Sprintf("Challenge %d: %s", state.ChallengeNumber(), state.Challenge.Question)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(question))
	b.WriteString("\n\n")

	b.WriteString(s.answers.View())
	b.WriteString("\n")
	b.WriteString(s.submit.View())
	b.WriteString("\n\n")

	switch state.Phase {
	case session.PhaseCorrect:
		b.WriteString(theme.Correct.Render(state.Feedback))
		b.WriteString("\n\n")
		b.WriteString(s.next.View())
	case session.PhaseIncorrect:
		b.WriteString(theme.Incorrect.Render(state.Feedback))
	}

	return b.String()
}
