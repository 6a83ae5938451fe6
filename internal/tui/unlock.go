// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel is the first screen: it collects the vault path and the master
// password. Submitting either opens an existing vault file or, when no file
// exists at the path yet, starts a fresh vault that will be created on the
// first save.
type unlockModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newUnlockModel(defaultPath string) unlockModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/secrets.nvault"
	pathInput.Width = 48
	pathInput.SetValue(defaultPath)
	pathInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 48
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return unlockModel{
		inputs: []textinput.Model{pathInput, passwordInput},
	}
}

func (m *unlockModel) path() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m *unlockModel) password() string {
	return m.inputs[1].Value()
}

func (m *unlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *unlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m unlockModel) view(errMsg string) string {
	var b strings.Builder

	b.WriteString("Vault    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\nderiving key...")
	}
	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(errMsg))
	}

	return renderPage("NeoVault", b.String(), "tab: next field  enter: unlock  ctrl+c: quit")
}
