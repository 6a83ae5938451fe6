// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package crypto

import "errors"

// Sentinel errors returned by the key deriver and the cipher. Callers should
// match them with [errors.Is].
var (
	// ErrAuthenticationFailed is returned when the GCM authentication tag
	// does not verify during decryption. It covers both corruption/tampering
	// and a wrong key (wrong master password) — the two are indistinguishable
	// from the outside, and both must fail closed.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong password or tampered data")

	// ErrInvalidKeySize is returned when a key is not 32 bytes.
	ErrInvalidKeySize = errors.New("key must be 32 bytes")

	// ErrInvalidNonceSize is returned when a bundle's nonce is not 12 bytes.
	ErrInvalidNonceSize = errors.New("nonce must be 12 bytes")

	// ErrInvalidTagSize is returned when a bundle's tag is not 16 bytes.
	ErrInvalidTagSize = errors.New("authentication tag must be 16 bytes")

	// ErrInvalidSaltSize is returned when a caller-supplied salt is not
	// 16 bytes.
	ErrInvalidSaltSize = errors.New("salt must be 16 bytes")

	// ErrEmptyPassword is returned when a key derivation is attempted with
	// an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrUnsupportedAlgorithm is returned when a bundle names an algorithm
	// other than AES-256-GCM.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
)
