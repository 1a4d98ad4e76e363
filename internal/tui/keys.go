package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Solve  key.Binding
	Clear  key.Binding
	Begin  key.Binding

	North key.Binding
	South key.Binding
	East  key.Binding
	West  key.Binding
	Hint  key.Binding
	Map   key.Binding

	Again key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "take/release")),
	Solve:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "optimal burden")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Begin:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "enter the maze")),

	North: key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "north")),
	South: key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "south")),
	East:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "east")),
	West:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "west")),
	Hint:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hint")),
	Map:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "full map")),

	Again: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) selecting() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Solve, k.Clear, k.Begin, k.Quit}
}

func (k keyMap) playing() []key.Binding {
	return []key.Binding{k.North, k.South, k.East, k.West, k.Hint, k.Map, k.Again, k.Quit}
}

func (k keyMap) judged() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Again, k.Quit}
}
