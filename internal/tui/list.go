// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/neovault/neovault/models"
)

// listModel is the main screen: entry names with a cursor, plus an optional
// search filter applied through the vault's metadata-aware Search.
type listModel struct {
	names     []string
	idx       int
	filtering bool
	filter    textinput.Model
}

func newListModel() listModel {
	filter := textinput.New()
	filter.Placeholder = "search"
	filter.Width = 32

	return listModel{filter: filter}
}

func (m listModel) current() (string, bool) {
	if len(m.names) == 0 || m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.names)-1 {
		m.idx++
	}
}

// setNames replaces the visible names, clamping the cursor.
func (m *listModel) setNames(names []string) {
	m.names = names
	if m.idx >= len(m.names) {
		m.idx = len(m.names) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func entryIcon(entry *models.Entry) string {
	switch {
	case entry == nil:
		return "[?]"
	case entry.Content != nil && entry.FilePath != nil:
		return "[TF]"
	case entry.FilePath != nil:
		return "[F]"
	default:
		return "[T]"
	}
}

func (m listModel) view(vaultName string, entries map[string]*models.Entry, status, errMsg string) string {
	var b strings.Builder

	if m.filtering {
		b.WriteString("search: [" + m.filter.View() + "]\n\n")
	} else if m.filter.Value() != "" {
		b.WriteString("search: " + m.filter.Value() + "  (esc clears)\n\n")
	}

	if len(m.names) == 0 {
		b.WriteString("no entries\n")
	}
	for i, name := range m.names {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, entryIcon(entries[name]), name))
	}

	if status != "" {
		b.WriteString("\n" + statusStyle.Render(status))
	}
	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(errMsg))
	}

	hotKeys := "enter: open  n: new  d: delete  s: save  /: search  q: quit"
	if m.filtering {
		hotKeys = "enter: apply  esc: cancel"
	}

	return renderPage(vaultName, b.String(), hotKeys)
}
