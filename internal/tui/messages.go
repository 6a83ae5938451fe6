// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package tui

// unlockDoneMsg reports the outcome of the async unlock command: either an
// existing vault was opened, or a new one will be created at the chosen path
// on first save.
type unlockDoneMsg struct {
	created bool
	err     error
}

// savedMsg reports the outcome of the async save command.
type savedMsg struct {
	err error
}

// clipboardClearedMsg fires when the clipboard auto-clear timer elapses.
type clipboardClearedMsg struct{}

// clearStatusMsg removes a transient status line.
type clearStatusMsg struct{}
