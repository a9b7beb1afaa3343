package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codequest/internal/ui/layout"
)

type page struct {
	title  string
	inits  int
	seen   []tea.Msg
	hinted bool
}

func (p *page) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *page) Update(msg tea.Msg) (Screen, tea.Cmd) {
	p.seen = append(p.seen, msg)
	return p, nil
}

func (p *page) View(int, int) string { return p.title }
func (p *page) Title() string        { return p.title }

type hintedPage struct{ page }

func (h *hintedPage) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "?", Description: "Help"}}
}

func TestStack_OpenAndBack(t *testing.T) {
	root := &page{title: "quiz"}
	s := NewStack(root)

	overlay := &page{title: "help"}
	s.Update(Open(overlay)())
	require.Equal(t, 2, s.Depth())
	assert.Equal(t, "help", s.View(80, 24))
	assert.Equal(t, 1, overlay.inits)

	s.Update(Back())
	assert.Equal(t, 1, s.Depth())
	assert.Same(t, Screen(root), s.Top())
}

func TestStack_RootStays(t *testing.T) {
	s := NewStack(&page{title: "quiz"})
	s.Update(BackMsg{})
	s.Update(BackMsg{})
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, "quiz", s.Top().Title())
}

func TestStack_RoutesToTop(t *testing.T) {
	root := &page{title: "quiz"}
	overlay := &page{title: "help"}
	s := NewStack(root)
	s.Update(OpenMsg{Screen: overlay})

	key := tea.KeyPressMsg{Code: 'x', Text: "x"}
	s.Update(key)

	assert.Empty(t, root.seen)
	assert.Equal(t, []tea.Msg{key}, overlay.seen)
}

type loaded struct{}

func TestStack_BackgroundReachesCoveredScreens(t *testing.T) {
	root := &page{title: "quiz"}
	overlay := &page{title: "help"}
	s := NewStack(root)
	s.Update(OpenMsg{Screen: overlay})

	s.Update(loaded{})

	assert.Equal(t, []tea.Msg{loaded{}}, root.seen)
	assert.Equal(t, []tea.Msg{loaded{}}, overlay.seen)
	assert.Equal(t, 2, s.Depth())
}

func TestStack_Hints(t *testing.T) {
	s := NewStack(&hintedPage{page{title: "quiz"}})
	assert.Equal(t, "?", s.Hints()[0].Key)

	s.Update(OpenMsg{Screen: &page{title: "help"}})
	hints := s.Hints()
	require.Len(t, hints, 2)
	assert.Equal(t, "Esc", hints[0].Key)
	assert.Equal(t, "Ctrl+C", hints[1].Key)
}
