// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

import "time"

// Entry is a single named secret stored inside a vault. An entry carries
// either an inline secret payload (Content), a reference to an external file
// (FilePath), or both. Entries are keyed by Name inside a vault; the name is
// unique per vault.
//
// Timestamps are ISO-8601 strings. They are kept as strings rather than
// [time.Time] so that vault files written by other implementations round-trip
// byte-for-byte regardless of their ISO-8601 flavor.
type Entry struct {
	// Name is the unique identifier of the entry within its vault.
	Name string `json:"name"`

	// FilePath optionally references an external file. The vault stores the
	// path only; the referenced file contents are not encrypted by the vault.
	FilePath *string `json:"file_path"`

	// Content optionally holds the inline secret payload.
	Content *string `json:"content"`

	// Metadata maps free-form keys to typed values used for organization
	// and search (string-valued metadata participates in Search).
	Metadata map[string]Value `json:"metadata"`

	// CreatedAt is set once at construction.
	CreatedAt string `json:"created_at"`

	// ModifiedAt is refreshed by Touch whenever the entry changes.
	ModifiedAt string `json:"modified_at"`
}

// NewEntry constructs a validated vault entry. filePath and content may each
// be nil, but not both: an entry with neither a payload nor a file reference
// is rejected with [ErrEmptyEntry]. A nil metadata map is replaced with an
// empty one so callers can always range over Entry.Metadata.
func NewEntry(name string, filePath, content *string, metadata map[string]Value) (*Entry, error) {
	now := Now()
	entry := &Entry{
		Name:       name,
		FilePath:   filePath,
		Content:    content,
		Metadata:   metadata,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if entry.Metadata == nil {
		entry.Metadata = make(map[string]Value)
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewTextEntry constructs an entry holding an inline text secret.
func NewTextEntry(name, content string, metadata map[string]Value) (*Entry, error) {
	return NewEntry(name, nil, &content, metadata)
}

// NewFileEntry constructs an entry referencing an external file.
func NewFileEntry(name, filePath string, metadata map[string]Value) (*Entry, error) {
	return NewEntry(name, &filePath, nil, metadata)
}

// Validate checks the structural invariants of the entry. It returns
// [ErrEmptyName] when the name is empty and [ErrEmptyEntry] when the entry
// has neither content nor a file reference. Validate is also applied to
// entries decoded from a vault file, so a file carrying an invalid entry
// fails the whole load.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.FilePath == nil && e.Content == nil {
		return ErrEmptyEntry
	}

	return nil
}

// Touch refreshes ModifiedAt to the current time.
func (e *Entry) Touch() {
	e.ModifiedAt = Now()
}

// SetContent replaces the inline payload and refreshes ModifiedAt.
func (e *Entry) SetContent(content string) {
	e.Content = &content
	e.Touch()
}

// Now returns the current time as an ISO-8601 (RFC 3339) string. All vault
// and entry timestamps are produced through this helper.
func Now() string {
	return time.Now().Format(time.RFC3339Nano)
}
