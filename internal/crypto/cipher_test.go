// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/neovault/neovault/models"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x2A}, KeySize)
}

func TestEncrypt_BundleShape(t *testing.T) {
	c := NewCipher()
	plaintext := []byte(`{"metadata":{},"entries":{}}`)

	bundle, err := c.Encrypt(plaintext, testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if len(bundle.Nonce) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(bundle.Nonce), NonceSize)
	}
	if len(bundle.Tag) != TagSize {
		t.Fatalf("tag length = %d, want %d", len(bundle.Tag), TagSize)
	}
	if len(bundle.Ciphertext) != len(plaintext) {
		t.Fatalf("ciphertext length = %d, want %d (GCM applies no padding)", len(bundle.Ciphertext), len(plaintext))
	}
	if bundle.Algorithm != models.EncryptionAlgorithm {
		t.Fatalf("algorithm = %q, want %q", bundle.Algorithm, models.EncryptionAlgorithm)
	}
	if bytes.Contains(bundle.Ciphertext, []byte("entries")) {
		t.Fatalf("ciphertext leaks plaintext")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewCipher()
	plaintext := []byte("the quick brown fox")

	bundle, err := c.Encrypt(plaintext, testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	decrypted, err := c.Decrypt(bundle, testKey())
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	c := NewCipher()
	plaintext := []byte("same plaintext")

	b1, err := c.Encrypt(plaintext, testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b2, err := c.Encrypt(plaintext, testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(b1.Nonce, b2.Nonce) {
		t.Fatalf("expected different nonces for two encryptions")
	}
	if bytes.Equal(b1.Ciphertext, b2.Ciphertext) {
		t.Fatalf("expected different ciphertexts under different nonces")
	}
}

func TestDecrypt_TamperedCiphertextFailsAuthentication(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("sensitive payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	bundle.Ciphertext[0] ^= 0xFF

	_, err = c.Decrypt(bundle, testKey())
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_TamperedTagFailsAuthentication(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("sensitive payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	bundle.Tag[TagSize-1] ^= 0x01

	_, err = c.Decrypt(bundle, testKey())
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_TamperedNonceFailsAuthentication(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("sensitive payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	bundle.Nonce[0] ^= 0x01

	_, err = c.Decrypt(bundle, testKey())
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_WrongKeyFailsAuthentication(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("sensitive payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	wrongKey := bytes.Repeat([]byte{0x13}, KeySize)
	_, err = c.Decrypt(bundle, wrongKey)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecrypt_UnknownAlgorithmRejected(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	bundle.Algorithm = "AES-128-CBC"

	_, err = c.Decrypt(bundle, testKey())
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestDecrypt_BadNonceAndTagSizesRejected(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt([]byte("payload"), testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	short := bundle
	short.Nonce = bundle.Nonce[:NonceSize-1]
	if _, err = c.Decrypt(short, testKey()); !errors.Is(err, ErrInvalidNonceSize) {
		t.Fatalf("error = %v, want ErrInvalidNonceSize", err)
	}

	short = bundle
	short.Tag = bundle.Tag[:TagSize-1]
	if _, err = c.Decrypt(short, testKey()); !errors.Is(err, ErrInvalidTagSize) {
		t.Fatalf("error = %v, want ErrInvalidTagSize", err)
	}
}

func TestEncrypt_WrongKeySizeRejected(t *testing.T) {
	c := NewCipher()

	_, err := c.Encrypt([]byte("payload"), []byte("short key"))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("error = %v, want ErrInvalidKeySize", err)
	}
}

func TestEncrypt_EmptyPlaintextRoundTrips(t *testing.T) {
	c := NewCipher()

	bundle, err := c.Encrypt(nil, testKey())
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(bundle.Ciphertext) != 0 {
		t.Fatalf("ciphertext length = %d, want 0", len(bundle.Ciphertext))
	}

	decrypted, err := c.Decrypt(bundle, testKey())
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if len(decrypted) != 0 {
		t.Fatalf("decrypted length = %d, want 0", len(decrypted))
	}
}
