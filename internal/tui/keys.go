package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Add        key.Binding
	Refresh    key.Binding
	BronzeUp   key.Binding
	BronzeDown key.Binding
	SilverUp   key.Binding
	SilverDown key.Binding
	GoldUp     key.Binding
	GoldDown   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space/x", "toggle done")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		BronzeUp:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b/B", "bronze goal ±1")),
		BronzeDown: key.NewBinding(key.WithKeys("B")),
		SilverUp:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "silver goal ±1")),
		SilverDown: key.NewBinding(key.WithKeys("S")),
		GoldUp:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "gold goal ±1")),
		GoldDown:   key.NewBinding(key.WithKeys("G")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLines lists the bindings shown in the sidebar.
func (k keyMap) helpLines() []string {
	var out []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.BronzeUp, k.SilverUp, k.GoldUp, k.Refresh, k.Quit} {
		h := b.Help()
		out = append(out, "- "+h.Key+": "+h.Desc)
	}
	return out
}
