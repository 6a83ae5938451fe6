// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-vault vault file path
//	-description description for newly created vaults
//	-iterations PBKDF2 iteration count override
//	-log-level minimum log level (debug, info, warn, error)
//	-clipboard-timeout clipboard auto-clear delay (e.g., "15s")
//	-c/-config json file path with configs
//
// Binaries may register additional flags of their own before calling
// [GetConfig]; ParseFlags performs the single flag.Parse for the process.
func ParseFlags() *StructuredConfig {
	var vaultPath string
	var vaultDescription string
	var kdfIterations int
	var logLevel string
	var clipboardTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&vaultPath, "vault", "", "Vault file path")
	flag.StringVar(&vaultDescription, "description", "", "Description for newly created vaults")
	flag.IntVar(&kdfIterations, "iterations", 0, "PBKDF2 iteration count override")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.DurationVar(&clipboardTimeout, "clipboard-timeout", 0, "Clipboard auto-clear delay (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			Path:        vaultPath,
			Description: vaultDescription,
		},
		Crypto: Crypto{
			KDFIterations: kdfIterations,
		},
		Logging: Logging{
			Level: logLevel,
		},
		TUI: TUI{
			ClipboardTimeout: clipboardTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
