package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	JumpDown key.Binding
	JumpUp   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "-0.5%"),
		),
		Up: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+0.5%"),
		),
		JumpDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "-5%"),
		),
		JumpUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "+5%"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to required"),
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
	return []key.Binding{k.Down, k.Up, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.JumpDown, k.JumpUp},
		{k.Reset, k.Help, k.Quit},
	}
}
