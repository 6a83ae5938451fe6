// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the salt length in bytes (128 bits).
	SaltSize = 16

	// KeySize is the derived key length in bytes (256 bits, AES-256).
	KeySize = 32

	// DefaultIterations is the default PBKDF2 iteration count, following
	// current OWASP/NIST guidance for PBKDF2-HMAC-SHA256.
	DefaultIterations = 600_000
)

// pbkdf2KeyDeriver is the private implementation of [KeyDeriver].
type pbkdf2KeyDeriver struct {
	// PBKDF2 tuning. Stored in the struct so the iteration count can be
	// raised per deployment without touching call sites. The vault file
	// format does not record it, so raising it only affects new files.
	iterations int
	keyLen     int
}

// NewKeyDeriver constructs a [KeyDeriver] using PBKDF2-HMAC-SHA256 with
// [DefaultIterations] iterations and a 256-bit output key.
func NewKeyDeriver() KeyDeriver {
	return NewKeyDeriverWithIterations(DefaultIterations)
}

// NewKeyDeriverWithIterations constructs a [KeyDeriver] with an explicit
// iteration count. Counts below 1 fall back to [DefaultIterations]. Lowered
// counts are intended for tests only; production callers should never go
// below the default.
func NewKeyDeriverWithIterations(iterations int) KeyDeriver {
	if iterations < 1 {
		iterations = DefaultIterations
	}

	return &pbkdf2KeyDeriver{
		iterations: iterations,
		keyLen:     KeySize,
	}
}

// GenerateSalt implements [KeyDeriver]. It reads [SaltSize] random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *pbkdf2KeyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return salt, nil
}

// DeriveKey implements [KeyDeriver]. It stretches password and salt into a
// 256-bit key with PBKDF2-HMAC-SHA256. When salt is nil a fresh one is
// generated; the salt in use is always returned so the caller can store it
// next to the ciphertext ([models.EncryptedVaultFile].Salt).
//
// This call is intentionally slow: it performs the full iteration count on
// every invocation and must not be cached across passwords.
func (k *pbkdf2KeyDeriver) DeriveKey(password string, salt []byte) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	if salt == nil {
		generated, err := k.GenerateSalt()
		if err != nil {
			return nil, nil, err
		}
		salt = generated
	}
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSaltSize, len(salt))
	}

	key := pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New)

	return key, salt, nil
}
