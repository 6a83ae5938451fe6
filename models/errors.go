// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

import "errors"

// Validation errors returned by entry constructors and [Entry.Validate].
// Callers should match them with [errors.Is].
var (
	// ErrEmptyName is returned when an entry is constructed without a name.
	ErrEmptyName = errors.New("entry name must not be empty")

	// ErrEmptyEntry is returned when an entry has neither inline content nor
	// a file reference. Such an entry protects nothing and is never stored.
	ErrEmptyEntry = errors.New("entry must have either content or a file path")

	// ErrUnsupportedValue is returned when a metadata value of an unsupported
	// Go type is converted into a [Value].
	ErrUnsupportedValue = errors.New("unsupported metadata value type")
)
