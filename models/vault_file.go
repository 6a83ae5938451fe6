// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

// Algorithm and KDF identifiers written into every vault file. Load rejects
// files carrying anything else.
const (
	EncryptionAlgorithm = "AES-256-GCM"
	KeyDerivationScheme = "PBKDF2-HMAC-SHA256"
)

// VaultFileExtension is the advisory filename suffix for vault files.
// It is a convention only; parsing never inspects the file name.
const VaultFileExtension = ".nvault"

// EncryptedVaultFile is the on-disk artifact: the encrypted vault payload
// together with everything needed to open it again (salt for key
// re-derivation, nonce and tag for authenticated decryption) and a cleartext
// info block describing the algorithms in use.
//
// Byte fields marshal as standard base64, which is encoding/json's native
// representation for []byte.
type EncryptedVaultFile struct {
	Ciphertext []byte        `json:"ciphertext"`
	Nonce      []byte        `json:"nonce"`
	Tag        []byte        `json:"tag"`
	Algorithm  string        `json:"algorithm"`
	Salt       []byte        `json:"salt"`
	VaultInfo  VaultFileInfo `json:"vault_info"`
}

// VaultFileInfo is the cleartext descriptor of a vault file. It is not
// authenticated; it exists so that tooling can identify a vault file and its
// algorithms without the password.
type VaultFileInfo struct {
	Version       string `json:"version"`
	Encryption    string `json:"encryption"`
	KeyDerivation string `json:"key_derivation"`
}

// NewVaultFileInfo returns the info block for a vault file written by this
// version of NeoVault.
func NewVaultFileInfo() VaultFileInfo {
	return VaultFileInfo{
		Version:       VaultVersion,
		Encryption:    EncryptionAlgorithm,
		KeyDerivation: KeyDerivationScheme,
	}
}
