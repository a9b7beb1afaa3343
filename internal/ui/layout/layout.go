// Package layout draws the chrome around the active screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codequest/internal/ui/theme"
)

// Terminal sizes. Below Min* only a resize notice is drawn; below
// CompactWidthThreshold the sidebar narrows.
const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold = 100
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nNeed %d x %d, have %d x %d", MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

// RenderHeader shows the app name, the screen title centered, and the
// player's XP and level on the right.
func RenderHeader(title string, xp, level int, width int) string {
	left := theme.Title.Render(" CodeQuest")
	right := theme.XP.Render(fmt.Sprintf("XP %d", xp)) +
		theme.Hint.Render("  |  ") +
		theme.XP.Render(fmt.Sprintf("Lv %d ", level))

	mid := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 0)
	center := theme.Body.Width(mid).Align(lipgloss.Center).Render(title)

	return bar(lipgloss.JoinHorizontal(lipgloss.Top, left, center, right), width)
}

// Binding turns the hint into a bubbles key binding for display.
func (h KeyHint) Binding() key.Binding {
	return key.NewBinding(key.WithKeys(strings.ToLower(h.Key)), key.WithHelp(h.Key, h.Description))
}

// RenderFooter lays the hints out on one line, dropping the ones that do
// not fit.
func RenderFooter(hints []KeyHint, width int) string {
	bindings := make([]key.Binding, len(hints))
	for i, h := range hints {
		bindings[i] = h.Binding()
	}

	hm := help.New()
	hm.ShortSeparator = "   "
	hm.Styles.ShortKey = theme.Key
	hm.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.TextDim)
	hm.Styles.ShortSeparator = hm.Styles.ShortDesc
	hm.Styles.Ellipsis = hm.Styles.ShortDesc
	hm.SetWidth(max(width-4, 0))

	return bar(" "+hm.ShortHelpView(bindings), width)
}

func bar(content string, width int) string {
	return theme.Bar.Width(width).Render(content)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
