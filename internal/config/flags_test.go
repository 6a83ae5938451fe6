// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags yields zero config",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Vault.Path)
				assert.Zero(t, cfg.Crypto.KDFIterations)
				assert.Empty(t, cfg.JSONFilePath)
			},
		},
		{
			name: "vault path and description",
			args: []string{"-vault", "/tmp/secrets.nvault", "-description", "home vault"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/secrets.nvault", cfg.Vault.Path)
				assert.Equal(t, "home vault", cfg.Vault.Description)
			},
		},
		{
			name: "kdf iterations",
			args: []string{"-iterations", "750000"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 750000, cfg.Crypto.KDFIterations)
			},
		},
		{
			name: "log level and clipboard timeout",
			args: []string{"-log-level", "warn", "-clipboard-timeout", "45s"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, 45*time.Second, cfg.TUI.ClipboardTimeout)
			},
		},
		{
			name: "short config flag",
			args: []string{"-c", "/etc/neovault.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/neovault.json", cfg.JSONFilePath)
			},
		},
		{
			name: "long config flag",
			args: []string{"-config", "/etc/neovault.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/neovault.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
