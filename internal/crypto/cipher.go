// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/neovault/neovault/models"
)

const (
	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the GCM authentication tag length in bytes (128 bits).
	TagSize = 16
)

// Bundle is the ephemeral result of a single Encrypt call: ciphertext, the
// nonce it was sealed under, the authentication tag, and the algorithm
// identifier. A Bundle is never persisted on its own; the vault copies its
// fields into a [models.EncryptedVaultFile] together with the KDF salt.
type Bundle struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
	Algorithm  string
}

// aesGCMCipher is the private implementation of [Cipher].
//
// Plaintext is fed to GCM as-is. GCM is a stream construction, so no block
// padding is applied and ciphertext length equals plaintext length.
type aesGCMCipher struct{}

// NewCipher constructs an AES-256-GCM [Cipher].
func NewCipher() Cipher {
	return &aesGCMCipher{}
}

// Encrypt implements [Cipher]. It seals plaintext under key with a fresh
// random 96-bit nonce. Go's GCM appends the tag to the ciphertext; Encrypt
// splits it back off so the two travel as distinct fields of the vault file.
//
// Nonce reuse under the same key breaks both confidentiality and authenticity
// of GCM, which is why the nonce is drawn from the CSPRNG on every call and
// never accepted from the caller.
func (c *aesGCMCipher) Encrypt(plaintext, key []byte) (Bundle, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return Bundle{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Bundle{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	// sealed = ciphertext ‖ tag
	split := len(sealed) - TagSize

	return Bundle{
		Ciphertext: sealed[:split],
		Nonce:      nonce,
		Tag:        sealed[split:],
		Algorithm:  models.EncryptionAlgorithm,
	}, nil
}

// Decrypt implements [Cipher]. It reassembles ciphertext‖tag and opens the
// result. Any tag mismatch, including one caused by a key derived from the
// wrong password, surfaces as [ErrAuthenticationFailed]; there is no
// partially decrypted output.
func (c *aesGCMCipher) Decrypt(bundle Bundle, key []byte) ([]byte, error) {
	if bundle.Algorithm != "" && bundle.Algorithm != models.EncryptionAlgorithm {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, bundle.Algorithm)
	}
	if len(bundle.Nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonceSize, len(bundle.Nonce))
	}
	if len(bundle.Tag) != TagSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidTagSize, len(bundle.Tag))
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(bundle.Ciphertext)+TagSize)
	sealed = append(sealed, bundle.Ciphertext...)
	sealed = append(sealed, bundle.Tag...)

	plaintext, err := gcm.Open(nil, bundle.Nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("open ciphertext: %w", ErrAuthenticationFailed)
	}

	return plaintext, nil
}

// newGCM builds an AES-256-GCM AEAD from a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
