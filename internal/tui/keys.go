package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	forceQ  key.Binding
	newItem key.Binding
	refresh key.Binding
	copy    key.Binding
	submit  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
}
