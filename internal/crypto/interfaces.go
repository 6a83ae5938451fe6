// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a human master password into a fixed-length symmetric key.
// Derivation is deterministic: the same password and salt always produce the
// same key, which is what makes decrypt-side re-derivation possible. It is
// also deliberately slow (hundreds of thousands of PBKDF2 iterations) to
// resist offline brute force; callers must not short-circuit it.
type KeyDeriver interface {
	// GenerateSalt returns a fresh 16-byte salt from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from password and salt. When salt is
	// nil a new one is generated; the salt actually used is always returned
	// so it can be persisted next to the ciphertext.
	DeriveKey(password string, salt []byte) (key []byte, usedSalt []byte, err error)
}

// Cipher seals and opens byte payloads under a 32-byte key using an AEAD
// construction. Encrypt never reuses a nonce under the same key; Decrypt
// either yields exactly the original plaintext or fails closed with
// [ErrAuthenticationFailed].
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce.
	Encrypt(plaintext, key []byte) (Bundle, error)

	// Decrypt opens a bundle produced by Encrypt. It returns
	// [ErrAuthenticationFailed] when the tag does not verify.
	Decrypt(bundle Bundle, key []byte) ([]byte, error)
}
