// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	session   key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	export    key.Binding
	publish   key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
	save      key.Binding
	palette   key.Binding
	level     key.Binding
	listStyle key.Binding
	preview   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	moveUp:    key.NewBinding(key.WithKeys("shift+up", "K")),
	moveDown:  key.NewBinding(key.WithKeys("shift+down", "J")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	session:   key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	export:    key.NewBinding(key.WithKeys("x")),
	publish:   key.NewBinding(key.WithKeys("p")),
	info:      key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	palette:   key.NewBinding(key.WithKeys("a")),
	level:     key.NewBinding(key.WithKeys("h")),
	listStyle: key.NewBinding(key.WithKeys("o")),
	preview:   key.NewBinding(key.WithKeys("p")),
}
