// Package nav keeps the stack of TUI screens. The quiz sits at the bottom and
// overlays such as help are opened on top of it.
package nav

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codequest/internal/ui/layout"
)

// Screen is one page of the TUI. View draws only the area between the
// header and the footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// Hinter is implemented by screens that supply their own footer hints.
type Hinter interface {
	KeyHints() []layout.KeyHint
}

// OpenMsg puts Screen on top of the stack.
type OpenMsg struct {
	Screen Screen
}

// BackMsg closes the top screen.
type BackMsg struct{}

// Open returns a command that opens s.
func Open(s Screen) tea.Cmd {
	return func() tea.Msg { return OpenMsg{Screen: s} }
}

// Back is a command that closes the top screen.
func Back() tea.Msg {
	return BackMsg{}
}

// Stack routes input to its top screen and every other message to all
// screens, so work started by a covered screen still lands. The root screen is
// never closed.
type Stack struct {
	screens []Screen
}

func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Top is the screen receiving input.
func (s *Stack) Top() Screen {
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Depth() int {
	return len(s.screens)
}

// Update applies navigation messages. Key presses go to Top; anything else,
// such as load results and spinner ticks, goes to every screen bottom-up.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case OpenMsg:
		s.screens = append(s.screens, msg.Screen)
		return msg.Screen.Init()
	case BackMsg:
		if len(s.screens) > 1 {
			s.screens = s.screens[:len(s.screens)-1]
		}
		return nil
	case tea.KeyMsg:
		return s.updateAt(len(s.screens)-1, msg)
	}

	cmds := make([]tea.Cmd, 0, len(s.screens))
	for i := range s.screens {
		cmds = append(cmds, s.updateAt(i, msg))
	}
	return tea.Batch(cmds...)
}

func (s *Stack) updateAt(i int, msg tea.Msg) tea.Cmd {
	next, cmd := s.screens[i].Update(msg)
	s.screens[i] = next
	return cmd
}

func (s *Stack) View(width, height int) string {
	return s.Top().View(width, height)
}

// Hints returns the top screen's footer hints, or the generic ones.
func (s *Stack) Hints() []layout.KeyHint {
	if h, ok := s.Top().(Hinter); ok {
		return h.KeyHints()
	}
	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if s.Depth() > 1 {
		hints = append([]layout.KeyHint{{Key: "Esc", Description: "Back"}}, hints...)
	}
	return hints
}
