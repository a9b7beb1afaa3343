package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Switch key.Binding
	Up     key.Binding
	Down   key.Binding
	Answer key.Binding
	Enter  key.Binding
	Next   key.Binding
	Retry  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Switch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("Tab", "move between topics and answers")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Answer: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer with that option")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "pick topic, submit or continue")),
	Next:   key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("N", "next question after a correct answer")),
	Retry:  key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "retry a challenge that failed to load")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle this help")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Answer, k.Enter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Up, k.Down},
		{k.Answer, k.Enter, k.Next, k.Retry},
		{k.Help, k.Quit},
	}
}
