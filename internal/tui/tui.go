// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

// Package tui is the interactive terminal client. It is built on Bubble Tea:
// one root model per session, screen sub-models for unlock, entry list, entry
// detail and the create form, and async commands for the slow operations
// (key derivation, file IO).
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neovault/neovault/internal/config"
	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/utils"
	"github.com/neovault/neovault/internal/vault"
)

// TUI runs the interactive client against an unlocked-on-demand vault.
type TUI struct {
	vault *vault.Vault
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

func NewTUI(v *vault.Vault, cfg *config.StructuredConfig, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{vault: v, cfg: cfg, log: log}
}

// Run blocks until the user quits or ctx is cancelled. Each run gets its own
// session id so log lines from overlapping client starts stay separable.
func (t *TUI) Run(ctx context.Context) error {
	session := utils.NewUUIDGenerator().Generate()
	log := &logger.Logger{Logger: t.log.With().Str("session", session).Logger()}

	model := newAppModel(
		t.vault,
		t.cfg.Vault.Path,
		t.cfg.Vault.Description,
		t.cfg.TUI.ClipboardTimeout,
		log,
	)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("terminal client exited with error")
		return fmt.Errorf("run terminal client: %w", err)
	}

	log.Info().Msg("terminal client exited")
	return nil
}
