package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	CursorUp   key.Binding
	CursorDown key.Binding
	BringUp    key.Binding
	BringDown  key.Binding
	Rescan     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		BringUp: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u/enter", "bring up"),
		),
		BringDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "bring down"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-row help shown under the interface list.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CursorUp, k.CursorDown, k.BringUp, k.BringDown, k.Rescan, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CursorUp, k.CursorDown},
		{k.BringUp, k.BringDown},
		{k.Rescan, k.Quit},
	}
}
