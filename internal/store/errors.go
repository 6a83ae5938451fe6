// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package store

import "errors"

// Sentinel errors returned by vault-file storage. Callers should use
// [errors.Is] to match against these values; plain I/O failures (missing
// file, permission denied) are wrapped os errors and can be matched with
// [errors.Is] against [os.ErrNotExist] and friends.
var (
	// ErrBadVaultFile is returned when a file exists and is readable but is
	// not a valid JSON vault-file document.
	ErrBadVaultFile = errors.New("vault file is not a valid vault document")

	// ErrEmptyPath is returned when a read or write is attempted with an
	// empty path.
	ErrEmptyPath = errors.New("vault file path must not be empty")
)
