// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeJSONConfig(t, `{
		"vault": {
			"path": "/home/user/secrets.nvault",
			"description": "family passwords"
		},
		"crypto": {
			"kdf_iterations": 900000
		},
		"logging": {
			"level": "error"
		},
		"tui": {
			"clipboard_timeout": "20s"
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "/home/user/secrets.nvault", cfg.Vault.Path)
	assert.Equal(t, "family passwords", cfg.Vault.Description)
	assert.Equal(t, 900000, cfg.Crypto.KDFIterations)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 20*time.Second, cfg.TUI.ClipboardTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"tui": {"clipboard_timeout": 15000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.TUI.ClipboardTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeJSONConfig(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Vault.Path)
	assert.Zero(t, cfg.TUI.ClipboardTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeJSONConfig(t, `{"vault": `)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func TestParseJSON_BadDurationString(t *testing.T) {
	path := writeJSONConfig(t, `{"tui": {"clipboard_timeout": "sometime"}}`)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))

	var restored Duration
	require.NoError(t, restored.UnmarshalJSON(raw))
	assert.Equal(t, d, restored)
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "empty config is valid",
			cfg:  StructuredConfig{},
		},
		{
			name: "negative iterations rejected",
			cfg:  StructuredConfig{Crypto: Crypto{KDFIterations: -1}},

			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name: "unknown log level rejected",
			cfg:  StructuredConfig{Logging: Logging{Level: "loud"}},

			wantErr: ErrInvalidLoggingConfigs,
		},
		{
			name: "negative clipboard timeout rejected",
			cfg:  StructuredConfig{TUI: TUI{ClipboardTimeout: -time.Second}},

			wantErr: ErrInvalidTUIConfigs,
		},
		{
			name: "valid log level accepted",
			cfg:  StructuredConfig{Logging: Logging{Level: "info"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
