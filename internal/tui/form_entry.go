// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/neovault/neovault/models"
)

// formEntryModel is the create-entry form: name, inline content, optional
// file path, and free-form "key=value" metadata pairs.
type formEntryModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

const (
	formFieldName = iota
	formFieldContent
	formFieldFilePath
	formFieldMetadata
)

func newFormEntryModel() formEntryModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "entry name"
	nameInput.CharLimit = 128
	nameInput.Width = 48
	nameInput.Focus()

	contentInput := textinput.New()
	contentInput.Placeholder = "secret content"
	contentInput.CharLimit = 4096
	contentInput.Width = 48
	contentInput.EchoMode = textinput.EchoPassword
	contentInput.EchoCharacter = '*'

	filePathInput := textinput.New()
	filePathInput.Placeholder = "/path/to/file (optional)"
	filePathInput.Width = 48

	metadataInput := textinput.New()
	metadataInput.Placeholder = "category=personal, url=example.com"
	metadataInput.Width = 48

	return formEntryModel{
		inputs: []textinput.Model{nameInput, contentInput, filePathInput, metadataInput},
	}
}

func (m *formEntryModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formEntryModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// buildEntry assembles a validated entry from the form fields.
func (m *formEntryModel) buildEntry() (*models.Entry, error) {
	name := strings.TrimSpace(m.inputs[formFieldName].Value())
	content := m.inputs[formFieldContent].Value()
	filePath := strings.TrimSpace(m.inputs[formFieldFilePath].Value())
	metadata := parseMetadataPairs(m.inputs[formFieldMetadata].Value())

	var contentPtr, filePathPtr *string
	if content != "" {
		contentPtr = &content
	}
	if filePath != "" {
		filePathPtr = &filePath
	}

	return models.NewEntry(name, filePathPtr, contentPtr, metadata)
}

func (m formEntryModel) view() string {
	var b strings.Builder

	b.WriteString("Name      [" + m.inputs[formFieldName].View() + "]\n")
	b.WriteString("Content   [" + m.inputs[formFieldContent].View() + "]\n")
	b.WriteString("File path [" + m.inputs[formFieldFilePath].View() + "]\n")
	b.WriteString("Metadata  [" + m.inputs[formFieldMetadata].View() + "]\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("New entry", b.String(), "tab: next field  enter: add  esc: cancel")
}
