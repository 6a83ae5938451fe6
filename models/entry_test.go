// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_ContentOnly(t *testing.T) {
	content := "s3cret"

	entry, err := NewEntry("api_key", nil, &content, nil)

	require.NoError(t, err)
	assert.Equal(t, "api_key", entry.Name)
	assert.Nil(t, entry.FilePath)
	require.NotNil(t, entry.Content)
	assert.Equal(t, "s3cret", *entry.Content)
	assert.NotNil(t, entry.Metadata, "nil metadata should be replaced with an empty map")
	assert.Equal(t, entry.CreatedAt, entry.ModifiedAt)
}

func TestNewEntry_FilePathOnly(t *testing.T) {
	entry, err := NewFileEntry("ssh_key", "/home/user/.ssh/id_ed25519", nil)

	require.NoError(t, err)
	require.NotNil(t, entry.FilePath)
	assert.Equal(t, "/home/user/.ssh/id_ed25519", *entry.FilePath)
	assert.Nil(t, entry.Content)
}

func TestNewEntry_EmptyNameRejected(t *testing.T) {
	content := "something"

	entry, err := NewEntry("", nil, &content, nil)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewEntry_NoPayloadRejected(t *testing.T) {
	entry, err := NewEntry("empty", nil, nil, nil)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestEntry_TimestampsAreISO8601(t *testing.T) {
	entry, err := NewTextEntry("note", "text", nil)
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339Nano, entry.CreatedAt)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339Nano, entry.ModifiedAt)
	assert.NoError(t, err)
}

func TestEntry_SetContentTouchesModifiedAt(t *testing.T) {
	entry, err := NewTextEntry("note", "old", nil)
	require.NoError(t, err)

	created := entry.CreatedAt
	time.Sleep(2 * time.Millisecond)
	entry.SetContent("new")

	assert.Equal(t, created, entry.CreatedAt, "CreatedAt must never change")
	assert.Equal(t, "new", *entry.Content)
	assert.NotEqual(t, created, entry.ModifiedAt)
}

func TestEntry_JSONFieldNames(t *testing.T) {
	entry, err := NewTextEntry("test_note", "hello", map[string]Value{
		"category": String("personal"),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, field := range []string{"name", "file_path", "content", "metadata", "created_at", "modified_at"} {
		assert.Contains(t, decoded, field)
	}
	assert.Nil(t, decoded["file_path"], "absent file path serializes as null")
}

func TestEntry_JSONRoundTrip(t *testing.T) {
	original, err := NewTextEntry("db_password", "hunter2", map[string]Value{
		"environment": String("production"),
		"rotations":   Number(3),
		"shared":      Bool(false),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Entry
	require.NoError(t, json.Unmarshal(raw, &restored))
	require.NoError(t, restored.Validate())

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, *original.Content, *restored.Content)
	assert.Equal(t, original.CreatedAt, restored.CreatedAt)
	assert.Equal(t, original.Metadata, restored.Metadata)
}
