package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's key bindings. Navigation-focus bindings (j/k,
// y, q) only apply once insert mode has been left with esc.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Leave  key.Binding
	Insert key.Binding
	Yank   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("down", "move down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick theme"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave insert mode"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "edit query"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy theme name"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
