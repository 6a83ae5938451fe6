// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// StructuredConfig is the top-level configuration container for the NeoVault
// binaries. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the default vault location and description.
	Vault Vault `envPrefix:"NEOVAULT_"`

	// Crypto holds key-derivation tuning.
	Crypto Crypto `envPrefix:"NEOVAULT_"`

	// Logging holds log output settings.
	Logging Logging `envPrefix:"NEOVAULT_"`

	// TUI holds settings for the interactive client.
	TUI TUI `envPrefix:"NEOVAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the NEOVAULT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"NEOVAULT_CONFIG"`
}

// Vault holds the default vault-file settings.
type Vault struct {
	// Path is the default vault file the binaries open or create
	// (e.g. "~/secrets.nvault", advisory extension ".nvault").
	// Env: NEOVAULT_VAULT_PATH
	Path string `env:"VAULT_PATH"`

	// Description is written into the metadata of newly created vaults.
	// Env: NEOVAULT_VAULT_DESCRIPTION
	Description string `env:"VAULT_DESCRIPTION"`
}

// Crypto holds key-derivation tuning.
type Crypto struct {
	// KDFIterations overrides the PBKDF2-HMAC-SHA256 iteration count used
	// when sealing vaults. Zero keeps the built-in default (600,000).
	// Raising it only affects newly written files; reading old files needs
	// no configuration since the salt is stored in the file.
	// Env: NEOVAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Logging holds log output settings.
type Logging struct {
	// Level is the minimum emitted log level ("debug", "info", "warn",
	// "error"). Empty keeps the default.
	// Env: NEOVAULT_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// TUI holds settings for the interactive client.
type TUI struct {
	// ClipboardTimeout is how long a secret copied from the detail screen
	// stays on the system clipboard before being cleared (e.g. "15s").
	// Zero disables the automatic clear.
	// Env: NEOVAULT_CLIPBOARD_TIMEOUT
	ClipboardTimeout time.Duration `env:"CLIPBOARD_TIMEOUT"`
}

// GetConfig assembles the configuration from environment variables, flags,
// and an optional JSON file, then validates the result.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// validate checks the merged configuration for values that can never be
// correct, joining one sentinel error per invalid group.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Crypto.KDFIterations < 0 {
		errs = append(errs, fmt.Errorf("%w: kdf iterations must not be negative", ErrInvalidCryptoConfigs))
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidLoggingConfigs, err))
		}
	}

	if c.TUI.ClipboardTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: clipboard timeout must not be negative", ErrInvalidTUIConfigs))
	}

	return errors.Join(errs...)
}
