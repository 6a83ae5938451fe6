// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package vault

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/neovault/neovault/internal/crypto"
	"github.com/neovault/neovault/internal/logger"
	"github.com/neovault/neovault/internal/store"
	"github.com/neovault/neovault/models"
)

// Vault is an in-memory collection of secret entries that can be sealed into
// a single encrypted file and opened again with the master password.
//
// A vault starts empty, becomes populated through Add or Load, and returns
// to empty through Clear or a failed Load. Save is a side effect only; it
// never changes the in-memory state beyond remembering the path.
//
// All public operations take an exclusive lock, so a single Vault instance
// may be shared between goroutines (the TUI dispatches Save/Load from
// Bubble Tea commands, which run concurrently with the UI loop).
type Vault struct {
	mu sync.Mutex

	path     string
	entries  map[string]*models.Entry
	metadata models.VaultMetadata

	keys   crypto.KeyDeriver
	cipher crypto.Cipher
	files  store.VaultFileStorage
	log    *logger.Logger
}

// Info is a point-in-time snapshot of a vault's non-secret state.
type Info struct {
	Path       string
	Metadata   models.VaultMetadata
	EntryCount int
	Entries    []string
}

// New constructs an empty vault with the given collaborators. A nil log is
// replaced with a no-op logger.
func New(keys crypto.KeyDeriver, cipher crypto.Cipher, files store.VaultFileStorage, log *logger.Logger) *Vault {
	if log == nil {
		log = logger.Nop()
	}

	return &Vault{
		entries:  make(map[string]*models.Entry),
		metadata: models.NewVaultMetadata(""),
		keys:     keys,
		cipher:   cipher,
		files:    files,
		log:      log,
	}
}

// SetDescription replaces the vault description and refreshes the metadata.
func (v *Vault) SetDescription(description string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.metadata.Description = description
	v.refreshMetadata()
}

// Add inserts entry under its name. It returns false, leaving the vault
// unchanged, when the entry is nil or invalid, or when an entry with the
// same name already exists. Add never overwrites.
func (v *Vault) Add(entry *models.Entry) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if entry == nil || entry.Validate() != nil {
		v.log.Warn().Msg("rejected invalid entry")
		return false
	}
	if _, exists := v.entries[entry.Name]; exists {
		v.log.Warn().Str("entry", entry.Name).Msg("entry already exists")
		return false
	}

	v.entries[entry.Name] = entry
	v.refreshMetadata()
	return true
}

// Remove deletes the named entry. It returns false when no such entry exists.
func (v *Vault) Remove(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.entries[name]; !exists {
		v.log.Warn().Str("entry", name).Msg("entry not found")
		return false
	}

	delete(v.entries, name)
	v.refreshMetadata()
	return true
}

// Get returns the named entry, or nil when absent.
func (v *Vault) Get(name string) *models.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.entries[name]
}

// List returns the names of all entries, sorted for stable output.
func (v *Vault) List() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.listNames()
}

// Search returns all entries whose name or any string-valued metadata value
// contains query, case-insensitively. Each entry appears at most once even
// when several fields match. Results are ordered by entry name.
func (v *Vault) Search(query string) []*models.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	q := strings.ToLower(query)
	results := make([]*models.Entry, 0)

	for _, name := range v.listNames() {
		entry := v.entries[name]
		if strings.Contains(strings.ToLower(entry.Name), q) {
			results = append(results, entry)
			continue
		}

		for _, value := range entry.Metadata {
			s, ok := value.AsString()
			if ok && strings.Contains(strings.ToLower(s), q) {
				results = append(results, entry)
				break
			}
		}
	}

	return results
}

// Clear removes every entry and refreshes the metadata.
func (v *Vault) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries = make(map[string]*models.Entry)
	v.refreshMetadata()
}

// Info returns a snapshot of the vault's path, metadata, and entry names.
func (v *Vault) Info() Info {
	v.mu.Lock()
	defer v.mu.Unlock()

	return Info{
		Path:       v.path,
		Metadata:   v.metadata,
		EntryCount: len(v.entries),
		Entries:    v.listNames(),
	}
}

// Path returns the last-used persistence location, or "" for a vault that
// has never been saved or loaded.
func (v *Vault) Path() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.path
}

// Save seals the vault under password and writes it to path. An empty path
// falls back to the path remembered from a previous Save or Load;
// [ErrNoVaultPath] is returned when neither exists.
//
// Every Save generates a fresh salt (and therefore a fresh key) and a fresh
// nonce, so saving the same vault twice produces entirely different files.
// The write goes through the storage collaborator's temp-then-rename, so a
// failed Save never leaves a truncated file that parses as a vault.
func (v *Vault) Save(password, path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if path == "" {
		path = v.path
	}
	if path == "" {
		return ErrNoVaultPath
	}

	document := models.VaultDocument{
		Metadata: v.metadata,
		Entries:  v.entries,
	}
	plaintext, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vault document: %w", err)
	}

	key, salt, err := v.keys.DeriveKey(password, nil)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	bundle, err := v.cipher.Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	file := &models.EncryptedVaultFile{
		Ciphertext: bundle.Ciphertext,
		Nonce:      bundle.Nonce,
		Tag:        bundle.Tag,
		Algorithm:  bundle.Algorithm,
		Salt:       salt,
		VaultInfo:  models.NewVaultFileInfo(),
	}

	if err := v.files.Write(path, file); err != nil {
		return err
	}

	v.path = path
	v.log.Info().Str("path", path).Int("entries", len(v.entries)).Msg("vault saved")
	return nil
}

// Load opens the vault file at path with password and replaces the vault's
// in-memory state with the file's contents.
//
// On any failure (unreadable file, malformed document, missing salt, failed
// authentication, or an invalid entry inside the decrypted payload) the
// vault is reset to empty with entry_count 0. Load never leaves
// partially-loaded or stale state behind.
func (v *Vault) Load(path, password string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := v.files.Read(path)
	if err != nil {
		return v.failLoad(path, err)
	}

	if len(file.Salt) == 0 {
		return v.failLoad(path, ErrMissingSalt)
	}
	if len(file.Ciphertext) == 0 {
		return v.failLoad(path, ErrMissingCiphertext)
	}

	key, _, err := v.keys.DeriveKey(password, file.Salt)
	if err != nil {
		return v.failLoad(path, fmt.Errorf("derive key: %w", err))
	}

	plaintext, err := v.cipher.Decrypt(crypto.Bundle{
		Ciphertext: file.Ciphertext,
		Nonce:      file.Nonce,
		Tag:        file.Tag,
		Algorithm:  file.Algorithm,
	}, key)
	if err != nil {
		return v.failLoad(path, err)
	}

	var document models.VaultDocument
	if err := json.Unmarshal(plaintext, &document); err != nil {
		return v.failLoad(path, fmt.Errorf("%w: %v", ErrBadVaultDocument, err))
	}

	entries := make(map[string]*models.Entry, len(document.Entries))
	for name, entry := range document.Entries {
		if entry == nil || entry.Validate() != nil {
			return v.failLoad(path, fmt.Errorf("%w: invalid entry %q", ErrBadVaultDocument, name))
		}
		entries[name] = entry
	}

	v.entries = entries
	v.metadata = document.Metadata
	v.metadata.EntryCount = len(entries)
	v.path = path

	v.log.Info().Str("path", path).Int("entries", len(entries)).Msg("vault loaded")
	return nil
}

// failLoad resets the vault to empty and returns err. Callers hold v.mu.
func (v *Vault) failLoad(path string, err error) error {
	v.entries = make(map[string]*models.Entry)
	v.metadata.EntryCount = 0

	v.log.Error().Err(err).Str("path", path).Msg("vault load failed")
	return err
}

// refreshMetadata re-derives entry_count and modified_at after a mutation.
// Callers hold v.mu.
func (v *Vault) refreshMetadata() {
	v.metadata.EntryCount = len(v.entries)
	v.metadata.ModifiedAt = models.Now()
}

// listNames returns sorted entry names. Callers hold v.mu.
func (v *Vault) listNames() []string {
	names := make([]string, 0, len(v.entries))
	for name := range v.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
