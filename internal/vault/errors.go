// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package vault

import "errors"

// Sentinel errors returned by [Vault.Save] and [Vault.Load] to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values. Authentication failures surface as
// [github.com/neovault/neovault/internal/crypto.ErrAuthenticationFailed],
// I/O failures as wrapped os errors from the store package.
var (
	// ErrNoVaultPath is returned by Save when no destination path was given
	// and the vault has no remembered path from a previous Save or Load.
	ErrNoVaultPath = errors.New("no vault path specified")

	// ErrMissingSalt is returned by Load when the vault file carries no
	// key-derivation salt. Without it the key cannot be re-derived.
	ErrMissingSalt = errors.New("vault file is missing the key-derivation salt")

	// ErrMissingCiphertext is returned by Load when the vault file carries
	// no encrypted payload.
	ErrMissingCiphertext = errors.New("vault file is missing the ciphertext")

	// ErrBadVaultDocument is returned by Load when decryption succeeds but
	// the decrypted payload is not a valid vault document (broken JSON or an
	// entry violating its invariants).
	ErrBadVaultDocument = errors.New("decrypted payload is not a valid vault document")
)
