// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

// VaultVersion is the current version of the vault data model. It is written
// both into the encrypted vault document and into the cleartext vault_info
// block of the persisted file.
const VaultVersion = "1.0"

// DefaultVaultDescription is used for vaults created without an explicit
// description.
const DefaultVaultDescription = "NeoVault secure storage"

// VaultMetadata is the vault-level bookkeeping block stored (encrypted)
// alongside the entries. EntryCount always equals the number of entries
// immediately after any mutating vault operation.
type VaultMetadata struct {
	Version     string `json:"version"`
	CreatedAt   string `json:"created_at"`
	ModifiedAt  string `json:"modified_at"`
	EntryCount  int    `json:"entry_count"`
	Description string `json:"description"`
}

// NewVaultMetadata returns metadata for a freshly created, empty vault.
func NewVaultMetadata(description string) VaultMetadata {
	if description == "" {
		description = DefaultVaultDescription
	}
	now := Now()

	return VaultMetadata{
		Version:     VaultVersion,
		CreatedAt:   now,
		ModifiedAt:  now,
		EntryCount:  0,
		Description: description,
	}
}

// VaultDocument is the cleartext shape of a vault: the JSON document that is
// serialized, encrypted, and stored as the ciphertext of a vault file.
type VaultDocument struct {
	Metadata VaultMetadata     `json:"metadata"`
	Entries  map[string]*Entry `json:"entries"`
}
