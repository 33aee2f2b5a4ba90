// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-joycribe/internal/utils"
)

func TestFileBackend_SaveReplacesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	b, err := NewFileBackend(path)
	require.NoError(t, err)

	payload := []byte("[\n  {\n    \"id\": 1\n  }\n]")
	rev, err := b.Save(testContext(), payload, utils.Revision([]byte("[]")))
	require.NoError(t, err)
	assert.Equal(t, utils.Revision(payload), rev)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// временные файлы не остаются рядом с историей
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.json", entries[0].Name())
}
