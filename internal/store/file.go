// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/utils"
	"github.com/neovault/neovault/models"
)

// vaultFileStorage is the default filesystem implementation of
// [VaultFileStorage].
//
// Writes go to a uniquely named temp file in the destination directory and
// are renamed into place, so a crash or disk-full condition mid-write leaves
// either the previous vault file or no file, never a truncated document
// that parses as a vault.
type vaultFileStorage struct {
	ids *utils.UUIDGenerator
	log *logger.Logger
}

// NewVaultFileStorage constructs a filesystem-backed [VaultFileStorage].
// A nil log is replaced with a no-op logger.
func NewVaultFileStorage(log *logger.Logger) VaultFileStorage {
	if log == nil {
		log = logger.Nop()
	}

	return &vaultFileStorage{
		ids: utils.NewUUIDGenerator(),
		log: log,
	}
}

// Read implements [VaultFileStorage]. I/O failures are returned as wrapped os
// errors; a readable file that does not parse is reported as
// [ErrBadVaultFile].
func (s *vaultFileStorage) Read(path string) (*models.EncryptedVaultFile, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}

	var file models.EncryptedVaultFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadVaultFile, err)
	}

	return &file, nil
}

// Write implements [VaultFileStorage]. The document is written indented, the
// way the reference tooling writes it, with owner-only permissions.
func (s *vaultFileStorage) Write(path string, file *models.EncryptedVaultFile) error {
	if path == "" {
		return ErrEmptyPath
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vault file: %w", err)
	}

	tmpPath := filepath.Join(
		filepath.Dir(path),
		fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), s.ids.Generate()),
	)

	if err := os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("write vault file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// The temp file is useless without the rename; drop it.
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("path", tmpPath).Msg("remove orphaned temp vault file")
		}
		return fmt.Errorf("replace vault file: %w", err)
	}

	s.log.Debug().Str("path", path).Int("bytes", len(raw)).Msg("vault file written")
	return nil
}
