// Package app is the root Bubble Tea model: header, screen stack and footer.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/challenge"
	"github.com/abhisek/codequest/internal/nav"
	"github.com/abhisek/codequest/internal/screens/quiz"
	"github.com/abhisek/codequest/internal/session"
	"github.com/abhisek/codequest/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Generator challenge.Generator
	Topic     challenge.Topic
}

type model struct {
	screens   *nav.Stack
	sessions  *session.Manager
	sessionID string
	width     int
	height    int
}

func newModel(ctx context.Context, opts Options) model {
	sessions := session.NewManager(opts.Generator)
	sess := sessions.Create()
	return model{
		screens:   nav.NewStack(quiz.New(ctx, sess, opts.Topic)),
		sessions:  sessions,
		sessionID: sess.ID,
	}
}

// session is the player's session, looked up in the manager by ID.
func (m model) session() *session.Session {
	sess, ok := m.sessions.Get(m.sessionID)
	if !ok {
		panic("app: session " + m.sessionID + " not registered")
	}
	return sess
}

func (m model) Init() tea.Cmd {
	return m.screens.Top().Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.screens.Depth() > 1 {
				return m, nav.Back
			}
			return m, nil
		}
	}
	return m, m.screens.Update(msg)
}

func (m model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

func (m model) frame() string {
	stats := m.session().State.Stats()
	header := layout.RenderHeader(m.screens.Top().Title(), stats.XP, stats.Level, m.width)
	footer := layout.RenderFooter(m.screens.Hints(), m.width)

	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.screens.View(m.width, body), footer, m.width, m.height)
}

// Run starts the TUI and blocks until the player quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	m := newModel(ctx, opts)
	defer m.sessions.Delete(m.sessionID)

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
