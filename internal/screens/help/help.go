// Package help is the key binding overlay.
package help

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/nav"
	"github.com/abhisek/codequest/internal/ui/theme"
)

// HelpScreen lists the bindings of the screen that opened it.
type HelpScreen struct {
	keys help.KeyMap
	view help.Model
}

var _ nav.Screen = (*HelpScreen)(nil)

var closeKeys = key.NewBinding(key.WithKeys("q", "?"), key.WithHelp("q/?", "close"))

func New(keys help.KeyMap) *HelpScreen {
	view := help.New()
	view.ShowAll = true
	view.Styles.FullKey = theme.Key.Foreground(theme.Secondary)
	view.Styles.FullDesc = theme.Body
	view.Styles.FullSeparator = theme.Hint
	return &HelpScreen{keys: keys, view: view}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, closeKeys) {
		return h, nav.Back
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Keys"),
		"",
		h.view.View(h.keys),
		"",
		theme.Hint.Render("Esc, q or ? to close"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
}

func (h *HelpScreen) Title() string {
	return "Help"
}
