// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are invalid.
var (
	// ErrInvalidCryptoConfigs indicates invalid key-derivation settings
	// (for example, a negative PBKDF2 iteration count).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidLoggingConfigs indicates an unparseable log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidTUIConfigs indicates invalid interactive-client settings
	// (for example, a negative clipboard timeout).
	ErrInvalidTUIConfigs = errors.New("invalid tui configuration")
)
