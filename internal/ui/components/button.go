package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codequest/internal/ui/theme"
)

// Button runs OnPress when Press is hit while the button is Active.
type Button struct {
	Label   string
	Active  bool
	Press   key.Binding
	OnPress func() tea.Cmd
}

func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Press:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", label)),
		OnPress: onPress,
	}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !b.Active || b.OnPress == nil || !key.Matches(kmsg, b.Press) {
		return b, nil
	}
	return b, b.OnPress()
}

func (b Button) View() string {
	if !b.Active {
		return theme.ButtonInactive.Render(b.Label)
	}
	return theme.ButtonActive.Render("▸ " + b.Label)
}
