// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	search    key.Binding
	sentiment key.Binding
	persona   key.Binding
	newItem   key.Binding
	rerun     key.Binding
	trash     key.Binding
	restore   key.Binding
	delete    key.Binding
	emptyBin  key.Binding
	copy      key.Binding
	analyze   key.Binding
	openMedia key.Binding
	clear     key.Binding
	binScreen key.Binding
	dashboard key.Binding
	settings  key.Binding
	theme     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	search:    key.NewBinding(key.WithKeys("/")),
	sentiment: key.NewBinding(key.WithKeys("s")),
	persona:   key.NewBinding(key.WithKeys("p")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	rerun:     key.NewBinding(key.WithKeys("r")),
	trash:     key.NewBinding(key.WithKeys("d")),
	restore:   key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	emptyBin:  key.NewBinding(key.WithKeys("E")),
	copy:      key.NewBinding(key.WithKeys("c")),
	analyze:   key.NewBinding(key.WithKeys("a")),
	openMedia: key.NewBinding(key.WithKeys("o")),
	clear:     key.NewBinding(key.WithKeys("x")),
	binScreen: key.NewBinding(key.WithKeys("b")),
	dashboard: key.NewBinding(key.WithKeys("g")),
	settings:  key.NewBinding(key.WithKeys(",")),
	theme:     key.NewBinding(key.WithKeys("t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
