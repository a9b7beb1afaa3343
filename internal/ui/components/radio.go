package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/ui/theme"
)

// RadioGroup is a vertical single-choice list.
type RadioGroup struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
	Numbered bool
}

// NewRadioGroup creates a radio group with the first option selected.
func NewRadioGroup(label string, options []string) RadioGroup {
	return RadioGroup{
		Label:   label,
		Options: options,
	}
}

// SetOptions replaces the options and resets the selection.
func (r *RadioGroup) SetOptions(options []string) {
	r.Options = options
	r.Selected = 0
}

// Value returns the selected option, or "" when there are none.
func (r RadioGroup) Value() string {
	if r.Selected < 0 || r.Selected >= len(r.Options) {
		return ""
	}
	return r.Options[r.Selected]
}

// Select moves the selection to i if it is in range.
func (r *RadioGroup) Select(i int) bool {
	if i < 0 || i >= len(r.Options) {
		return false
	}
	r.Selected = i
	return true
}

// Update handles keyboard navigation while focused.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	if !r.Focused {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Selected > 0 {
			r.Selected--
		}
	case "down", "j":
		if r.Selected < len(r.Options)-1 {
			r.Selected++
		}
	}

	return r, nil
}

// View renders the group.
func (r RadioGroup) View() string {
	var b strings.Builder

	if r.Label != "" {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if r.Focused {
			labelStyle = labelStyle.Foreground(theme.Secondary).Bold(true)
		}
		b.WriteString(labelStyle.Render(r.Label))
		b.WriteString("\n")
	}

	for i, opt := range r.Options {
		mark := "( )"
		if i == r.Selected {
			mark = "(•)"
		}
		cursor := "  "
		if i == r.Selected && r.Focused {
			cursor = "▸ "
		}

		line := cursor + mark + " "
		if r.Numbered {
			line += fmt.Sprintf("%d. ", i+1)
		}
		line += opt

		switch {
		case i == r.Selected && r.Focused:
			b.WriteString(theme.Selected.Render(line))
		case i == r.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
