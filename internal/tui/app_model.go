// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neovault/neovault/internal/crypto"
	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/vault"
	"github.com/neovault/neovault/models"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
)

// appModel is the single Bubble Tea model of the client. It owns the screen
// sub-models and the session state: the unlocked vault, its path, and the
// master password retained for subsequent saves.
type appModel struct {
	vault            *vault.Vault
	log              *logger.Logger
	clipboardTimeout time.Duration
	description      string

	currentScreen screen
	unlock        unlockModel
	list          listModel
	detail        detailModel
	form          formEntryModel
	confirm       confirmModel

	vaultPath     string
	password      string
	showConfirm   bool
	pendingDelete string
	status        string
	errMsg        string
}

func newAppModel(v *vault.Vault, defaultPath, description string, clipboardTimeout time.Duration, log *logger.Logger) appModel {
	return appModel{
		vault:            v,
		log:              log,
		clipboardTimeout: clipboardTimeout,
		description:      description,
		currentScreen:    screenUnlock,
		unlock:           newUnlockModel(defaultPath),
		list:             newListModel(),
		form:             newFormEntryModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.unlock.submitting = false
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("unlock failed")
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		if msg.created {
			m.status = "new vault, it will be created on first save"
			if m.description != "" {
				m.vault.SetDescription(m.description)
			}
		}
		m.errMsg = ""
		m.currentScreen = screenList
		m.refreshList()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("save failed")
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "vault saved"
		return m, cmdClearStatusAfter(3 * time.Second)

	case clipboardClearedMsg:
		// Best effort: a clipboard manager may have replaced the content
		// already, overwriting it anyway does no harm.
		_ = clipboard.WriteAll("")
		m.status = "clipboard cleared"
		return m, cmdClearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			if m.vault.Remove(m.pendingDelete) {
				m.status = fmt.Sprintf("entry %q deleted (save to persist)", m.pendingDelete)
			}
			m.showConfirm = false
			m.pendingDelete = ""
			m.refreshList()
		case key.Matches(msg, keys.no):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.unlock.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.unlock.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.unlock.submitting {
			return m, nil
		}
		path, password := m.unlock.path(), m.unlock.password()
		if path == "" || password == "" {
			m.errMsg = "vault path and password are required"
			return m, nil
		}
		m.errMsg = ""
		m.unlock.submitting = true
		m.vaultPath = path
		m.password = password
		return m, m.cmdUnlock(path, password)
	}

	var cmd tea.Cmd
	m.unlock.inputs[m.unlock.focus], cmd = m.unlock.inputs[m.unlock.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering {
		switch {
		case key.Matches(msg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			m.refreshList()
		case key.Matches(msg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filter.SetValue("")
			m.refreshList()
		default:
			var cmd tea.Cmd
			m.list.filter, cmd = m.list.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.enter):
		if name, ok := m.list.current(); ok {
			m.detail = detailModel{name: name}
			m.status = ""
			m.errMsg = ""
			m.currentScreen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.form = newFormEntryModel()
		m.status = ""
		m.errMsg = ""
		m.currentScreen = screenForm
	case key.Matches(msg, keys.delete):
		if name, ok := m.list.current(); ok {
			m.confirm = confirmModel{message: name}
			m.pendingDelete = name
			m.showConfirm = true
		}
	case key.Matches(msg, keys.save):
		m.status = "saving..."
		return m, m.cmdSave()
	case key.Matches(msg, keys.search):
		m.list.filtering = true
		m.list.filter.Focus()
	case key.Matches(msg, keys.esc):
		m.list.filter.SetValue("")
		m.refreshList()
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail.revealed = false
		m.status = ""
		m.errMsg = ""
		m.currentScreen = screenList
	case msg.String() == "r":
		m.detail.revealed = !m.detail.revealed
	case key.Matches(msg, keys.copy):
		entry := m.vault.Get(m.detail.name)
		if entry == nil || entry.Content == nil {
			m.errMsg = "entry has no inline content to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(*entry.Content); err != nil {
			m.errMsg = "clipboard: " + err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "content copied"
		if m.clipboardTimeout > 0 {
			return m, tea.Tick(m.clipboardTimeout, func(time.Time) tea.Msg {
				return clipboardClearedMsg{}
			})
		}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		entry, err := m.form.buildEntry()
		if err != nil {
			m.form.errMsg = humanizeVaultError(err)
			return m, nil
		}
		if !m.vault.Add(entry) {
			m.form.errMsg = fmt.Sprintf("entry %q already exists", entry.Name)
			return m, nil
		}
		m.status = fmt.Sprintf("entry %q added (save to persist)", entry.Name)
		m.currentScreen = screenList
		m.refreshList()
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.showConfirm {
		return appStyle.Render(m.confirm.View())
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.unlock.view(m.errMsg)
	case screenList:
		title := "NeoVault — " + m.vaultPath
		return m.list.view(title, m.entriesByName(), m.status, m.errMsg)
	case screenDetail:
		return m.detail.view(m.vault.Get(m.detail.name), m.status, m.errMsg)
	case screenForm:
		return m.form.view()
	}

	return ""
}

// refreshList recomputes the visible entry names from the vault, applying
// the active search filter.
func (m *appModel) refreshList() {
	query := m.list.filter.Value()
	if query == "" {
		m.list.setNames(m.vault.List())
		return
	}

	matches := m.vault.Search(query)
	names := make([]string, 0, len(matches))
	for _, entry := range matches {
		names = append(names, entry.Name)
	}
	m.list.setNames(names)
}

func (m *appModel) entriesByName() map[string]*models.Entry {
	entries := make(map[string]*models.Entry, len(m.list.names))
	for _, name := range m.list.names {
		entries[name] = m.vault.Get(name)
	}
	return entries
}

// cmdUnlock loads the vault file, or reports a fresh vault when the file
// does not exist yet. Key derivation is deliberately slow, hence the async
// command.
func (m appModel) cmdUnlock(path, password string) tea.Cmd {
	v := m.vault
	return func() tea.Msg {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return unlockDoneMsg{created: true}
		}

		if err := v.Load(path, password); err != nil {
			return unlockDoneMsg{err: err}
		}
		return unlockDoneMsg{}
	}
}

func (m appModel) cmdSave() tea.Cmd {
	v, password, path := m.vault, m.password, m.vaultPath
	return func() tea.Msg {
		return savedMsg{err: v.Save(password, path)}
	}
}

func cmdClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// humanizeVaultError maps well-known failures to messages fit for the UI.
func humanizeVaultError(err error) string {
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return "wrong password, or the vault file was tampered with"
	case errors.Is(err, models.ErrEmptyEntry):
		return "entry needs content or a file path"
	case errors.Is(err, models.ErrEmptyName):
		return "entry name is required"
	default:
		return err.Error()
	}
}
