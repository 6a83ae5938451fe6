// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	newItem key.Binding
	save    key.Binding
	delete  key.Binding
	copy    key.Binding
	search  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	save:    key.NewBinding(key.WithKeys("s")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	search:  key.NewBinding(key.WithKeys("/")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
