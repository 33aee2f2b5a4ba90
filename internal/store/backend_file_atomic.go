// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows

package store

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFileAtomic replaces path with data. A reader sees either the old
// content or the new one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
