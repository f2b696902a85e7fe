package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the pager's key bindings
type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	First         key.Binding
	Last          key.Binding
	GoTo          key.Binding
	ThresholdUp   key.Binding
	ThresholdDown key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down", "pgdown", " "),
			key.WithHelp("j/↓", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
			key.WithHelp("k/↑", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		GoTo: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		ThresholdUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "snap threshold"),
		),
		ThresholdDown: key.NewBinding(
			key.WithKeys("-"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.GoTo, k.ThresholdUp, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.GoTo, k.ThresholdUp, k.Help, k.Quit},
	}
}
