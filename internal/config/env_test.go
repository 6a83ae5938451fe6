// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"NEOVAULT_CONFIG": "/path/to/config.json",

		"NEOVAULT_VAULT_PATH":        "/home/user/secrets.nvault",
		"NEOVAULT_VAULT_DESCRIPTION": "work secrets",

		"NEOVAULT_KDF_ITERATIONS": "800000",

		"NEOVAULT_LOG_LEVEL": "debug",

		"NEOVAULT_CLIPBOARD_TIMEOUT": "30s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/home/user/secrets.nvault", cfg.Vault.Path)
	assert.Equal(t, "work secrets", cfg.Vault.Description)
	assert.Equal(t, 800000, cfg.Crypto.KDFIterations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.TUI.ClipboardTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"NEOVAULT_VAULT_PATH": "/home/user/secrets.nvault",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/home/user/secrets.nvault", cfg.Vault.Path)
	assert.Empty(t, cfg.Vault.Description)
	assert.Zero(t, cfg.Crypto.KDFIterations)
	assert.Empty(t, cfg.Logging.Level)
	assert.Zero(t, cfg.TUI.ClipboardTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidValueTypes(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "iterations not a number",
			envVars: map[string]string{"NEOVAULT_KDF_ITERATIONS": "lots"},
		},
		{
			name:    "clipboard timeout not a duration",
			envVars: map[string]string{"NEOVAULT_CLIPBOARD_TIMEOUT": "soon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.envVars)

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			assert.Error(t, err)
		})
	}
}
