package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Home       key.Binding
	SystemBack key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	Back:       key.NewBinding(key.WithKeys("backspace", "b", "left"), key.WithHelp("b", "back")),
	Home:       key.NewBinding(key.WithKeys("h", "home"), key.WithHelp("h", "home")),
	SystemBack: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "system back")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
