package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRadioGroup_Navigation(t *testing.T) {
	r := NewRadioGroup("Topic", []string{"Python", "SQL", "AI/ML"})
	r.Focused = true

	r, _ = r.Update(keyPress('j'))
	assert.Equal(t, "SQL", r.Value())

	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	r, _ = r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, r.Selected, "stops at the last option")

	r, _ = r.Update(keyPress('k'))
	assert.Equal(t, "SQL", r.Value())
}

func TestRadioGroup_IgnoresKeysWhenBlurred(t *testing.T) {
	r := NewRadioGroup("", []string{"a", "b"})
	r, _ = r.Update(keyPress('j'))
	assert.Equal(t, 0, r.Selected)
}

func TestRadioGroup_SelectAndSetOptions(t *testing.T) {
	r := NewRadioGroup("", []string{"a", "b", "c"})
	assert.True(t, r.Select(2))
	assert.False(t, r.Select(3))
	assert.Equal(t, "c", r.Value())

	r.SetOptions([]string{"x"})
	assert.Equal(t, "x", r.Value())

	r.SetOptions(nil)
	assert.Equal(t, "", r.Value())
}

func TestRadioGroup_View(t *testing.T) {
	r := NewRadioGroup("Select your answer:", []string{"print(5)", "echo(5)"})
	r.Numbered = true
	r.Select(1)

	out := r.View()
	assert.Contains(t, out, "Select your answer:")
	assert.Contains(t, out, "( ) 1. print(5)")
	assert.Contains(t, out, "(•) 2. echo(5)")
}

func TestButton_PressOnlyWhenActive(t *testing.T) {
	pressed := 0
	b := NewButton("Submit Answer", func() tea.Cmd {
		pressed++
		return nil
	})

	b, _ = b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 0, pressed)

	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, pressed)
	assert.Contains(t, b.View(), "Submit Answer")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Lv 2", 30, 100, 30)
	assert.InDelta(t, 0.3, p.Percent(), 1e-9)
	assert.Contains(t, p.View(), "30/100")

	assert.Equal(t, 0.0, NewProgressBar("", 5, 0, 10).Percent())
	assert.Equal(t, 1.0, NewProgressBar("", 150, 100, 10).Percent())
}
