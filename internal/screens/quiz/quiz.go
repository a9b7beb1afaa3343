package quiz

import (
	"context"
	"log/slog"
	"strconv"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/challenge"
	"github.com/abhisek/codequest/internal/nav"
	"github.com/abhisek/codequest/internal/screens/help"
	"github.com/abhisek/codequest/internal/session"
	"github.com/abhisek/codequest/internal/ui/components"
	"github.com/abhisek/codequest/internal/ui/layout"
	"github.com/abhisek/codequest/internal/ui/theme"
)

type focusArea int

const (
	focusTopics focusArea = iota
	focusAnswers
)

// QuizScreen shows the topic picker, player stats and the current challenge.
type QuizScreen struct {
	ctx  context.Context
	sess *session.Session

	initial challenge.Topic
	topics  components.RadioGroup
	answers components.RadioGroup
	submit  components.Button
	next    components.Button
	spinner spinner.Model
	focus   focusArea
}

var _ nav.Screen = (*QuizScreen)(nil)
var _ nav.Hinter = (*QuizScreen)(nil)

// New creates the quiz screen. Init selects initial and loads its first
// challenge; ctx bounds every generation call.
func New(ctx context.Context, sess *session.Session, initial challenge.Topic) *QuizScreen {
	names := make([]string, len(challenge.AllTopics))
	for i, t := range challenge.AllTopics {
		names[i] = t.String()
	}

	s := &QuizScreen{
		ctx:     ctx,
		sess:    sess,
		initial: initial,
		topics:  components.NewRadioGroup("Select a topic:", names),
		answers: components.NewRadioGroup("Select your answer:", nil),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
		focus: focusTopics,
	}
	s.answers.Numbered = true
	s.submit = components.NewButton("Submit Answer", s.submitAnswer)
	s.next = components.NewButton("Next Question", s.advance)
	s.topics.Select(topicIndex(initial))
	s.syncFocus()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.selectTopic(s.initial)
}

func (s *QuizScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case challengeLoadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if s.sess.State.Phase != session.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) Title() string {
	if s.sess.State.Phase == session.PhaseIdle {
		return "Choose Your Learning Path"
	}
	return s.sess.State.Topic.String() + " Challenge"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch"},
		{Key: "↑↓", Description: "Move"},
	}

	switch s.sess.State.Phase {
	case session.PhaseAwaiting, session.PhaseIncorrect:
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Answer"})
	case session.PhaseCorrect:
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next"})
	case session.PhaseLoadFailed:
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	}

	if s.focus == focusTopics {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Pick topic"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	}

	return append(hints,
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Session returns the session backing the screen.
func (s *QuizScreen) Session() *session.Session {
	return s.sess
}

func (s *QuizScreen) handleLoaded(msg challengeLoadedMsg) (nav.Screen, tea.Cmd) {
	state := s.sess.State
	if !state.Apply(msg.Token, msg.Challenge, msg.Err) {
		slog.Debug("dropping stale challenge", "session", s.sess.ID, "token", msg.Token)
		return s, nil
	}

	if state.Phase == session.PhaseLoadFailed {
		slog.Warn("challenge load failed",
			"session", s.sess.ID,
			"topic", state.Topic.String(),
			"error", state.LoadErr,
		)
		s.answers.SetOptions(nil)
		s.focus = focusTopics
		s.syncFocus()
		return s, nil
	}

	s.answers.SetOptions(state.Challenge.Choices)
	s.focus = focusAnswers
	s.syncFocus()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (nav.Screen, tea.Cmd) {
	state := s.sess.State

	switch {
	case key.Matches(msg, keys.Help):
		return s, nav.Open(help.New(keys))

	case key.Matches(msg, keys.Switch):
		if s.focus == focusTopics && state.Challenge != nil {
			s.focus = focusAnswers
		} else {
			s.focus = focusTopics
		}
		s.syncFocus()
		return s, nil

	case key.Matches(msg, keys.Next):
		return s, s.advance()

	case key.Matches(msg, keys.Retry):
		return s, s.retry()

	case key.Matches(msg, keys.Answer):
		i, err := strconv.Atoi(msg.String())
		if err != nil || state.Challenge == nil || !s.answers.Select(i-1) {
			return s, nil
		}
		s.focus = focusAnswers
		s.syncFocus()
		return s, s.submitAnswer()

	case key.Matches(msg, keys.Enter):
		if s.focus == focusTopics {
			return s, s.selectTopic(challenge.AllTopics[s.topics.Selected])
		}
		var cmd tea.Cmd
		if s.next.Active {
			s.next, cmd = s.next.Update(msg)
		} else {
			s.submit, cmd = s.submit.Update(msg)
		}
		return s, cmd
	}

	if s.focus == focusTopics {
		s.topics, _ = s.topics.Update(msg)
	} else {
		s.answers, _ = s.answers.Update(msg)
	}
	return s, nil
}

func (s *QuizScreen) selectTopic(t challenge.Topic) tea.Cmd {
	s.topics.Select(topicIndex(t))
	token := s.sess.State.SelectTopic(t)
	slog.Info("topic selected", "session", s.sess.ID, "topic", t.String())
	return s.startLoad(token)
}

func (s *QuizScreen) submitAnswer() tea.Cmd {
	ok, err := s.sess.Submit(s.answers.Value())
	if err != nil {
		return nil
	}
	slog.Debug("answer submitted", "session", s.sess.ID, "correct", ok)
	s.syncFocus()
	return nil
}

func (s *QuizScreen) advance() tea.Cmd {
	token, err := s.sess.State.Advance()
	if err != nil {
		return nil
	}
	return s.startLoad(token)
}

func (s *QuizScreen) retry() tea.Cmd {
	token, err := s.sess.State.Retry()
	if err != nil {
		return nil
	}
	return s.startLoad(token)
}

// startLoad clears the answer list and generates off the UI goroutine.
func (s *QuizScreen) startLoad(token uint64) tea.Cmd {
	s.answers.SetOptions(nil)
	s.focus = focusTopics
	s.syncFocus()

	ctx, sess, topic := s.ctx, s.sess, s.sess.State.Topic
	load := func() tea.Msg {
		c, err := sess.Generate(ctx, topic)
		return challengeLoadedMsg{Token: token, Challenge: c, Err: err}
	}
	return tea.Batch(load, s.spinner.Tick)
}

func (s *QuizScreen) syncFocus() {
	phase := s.sess.State.Phase
	s.topics.Focused = s.focus == focusTopics
	s.answers.Focused = s.focus == focusAnswers
	s.submit.Active = s.focus == focusAnswers &&
		(phase == session.PhaseAwaiting || phase == session.PhaseIncorrect)
	s.next.Active = phase == session.PhaseCorrect
}

func topicIndex(t challenge.Topic) int {
	for i, at := range challenge.AllTopics {
		if at == t {
			return i
		}
	}
	return 0
}
