// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package store

import "github.com/neovault/neovault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultFileStorage persists and retrieves encrypted vault files. It is the
// vault's only I/O collaborator: everything above it works on in-memory
// structures, everything below it is the filesystem.
type VaultFileStorage interface {
	// Read loads and parses the vault file at path.
	Read(path string) (*models.EncryptedVaultFile, error)

	// Write persists file to path, replacing any previous vault file. A
	// failed write must never leave a partially-written file readable as a
	// valid vault.
	Write(path string, file *models.EncryptedVaultFile) error
}
