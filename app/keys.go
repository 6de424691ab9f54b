package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reload key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload config"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("ctrl+c", "exit"),
	),
}
