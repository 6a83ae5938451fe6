// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateValidAndUnique(t *testing.T) {
	gen := NewUUIDGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}
