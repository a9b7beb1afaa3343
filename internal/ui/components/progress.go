package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for Value out of Max.
type ProgressBar struct {
	Label string
	Value int
	Max   int
	Width int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, value, total, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Value: value,
		Max:   total,
		Width: width,
	}
}

// Percent returns the filled fraction clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Max <= 0 {
		return 0
	}
	f := float64(p.Value) / float64(p.Max)
	return min(max(f, 0), 1)
}

// View renders the bar followed by "value/max".
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + " "
	}

	counter := fmt.Sprintf(" %d/%d", p.Value, p.Max)
	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	return result
}
