package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Host    key.Binding
	Play    key.Binding
	Draw    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Host:    key.NewBinding(key.WithKeys("1", "H"), key.WithHelp("1", "host")),
	Play:    key.NewBinding(key.WithKeys("2", "P"), key.WithHelp("2", "play")),
	Draw:    key.NewBinding(key.WithKeys(" ", "enter", "n"), key.WithHelp("space", "draw next")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "mark")),
	Dismiss: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "keep playing")),
	Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}
