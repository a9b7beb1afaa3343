// Package theme holds the shared colors and lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#EAB308") // gold, XP and notices
	Success   = lipgloss.Color("#10B981")
	Error     = lipgloss.Color("#EF4444")
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#64748B")
	BgCard    = lipgloss.Color("#111827")
	Border    = lipgloss.Color("#374151")
)

func boxed(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

// Text styles.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Body  = lipgloss.NewStyle().Foreground(Text)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Key   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	XP    = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// Panels. Bar frames the header and footer.
var (
	Card   = boxed(Border).Background(BgCard).Padding(1, 2)
	Bar    = boxed(Border).Background(BgCard)
	Notice = boxed(Accent).Foreground(Accent).Padding(0, 1)
)

// Selection and answer feedback.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = Body
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Widgets.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = boxed(Border).Background(BgCard).Padding(0, 2)
)
