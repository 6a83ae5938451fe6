// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered unique identifiers, used for TUI
// session ids in logs and for unique temp-file suffixes during atomic vault
// writes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
