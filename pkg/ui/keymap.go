package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the meta bindings the demo reserves for itself. Everything
// else falls through to the navigation bindings in pkg/input.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Palette key.Binding
	Copy    key.Binding
}

// DefaultKeyMap returns the stock meta bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Palette: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to element"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy focused name"),
		),
	}
}
