package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Toggle   key.Binding
	MoveOut  key.Binding // to-buy -> in-stock
	MoveIn   key.Binding // in-stock -> to-buy
	EditNote key.Binding
	Leave    key.Binding
	Refresh  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding

	editing bool
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "move")),
		MoveOut:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "move")),
		MoveIn:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "move")),
		EditNote: key.NewBinding(key.WithKeys("n", "i"), key.WithHelp("n", "note")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done editing")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.editing {
		return []key.Binding{k.Leave, k.Next, k.ForceQ}
	}
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Next, k.EditNote, k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.MoveOut, k.MoveIn},
		{k.Next, k.Prev, k.EditNote, k.Leave},
		{k.Refresh, k.Quit, k.ForceQ},
	}
}
