package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Reset  key.Binding
	First  key.Binding
	Last   key.Binding
	CaretR key.Binding
	CaretL key.Binding
	Select key.Binding
	Input  key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/space", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		CaretR: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "caret →")),
		CaretL: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("s-tab", "caret ←")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search caret value")),
		Input:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "type target")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reset, k.Select, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.Reset},
		{k.CaretL, k.CaretR, k.Select, k.Input},
		{k.Theme, k.Help, k.Quit},
	}
}
