// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/workspace"
)

// maxMediaBytes matches the upload limit of the local HTTP API.
const maxMediaBytes = 100 << 20

// openMediaFile reads the file at path into a media handle owned by the
// workspace. The MIME type is sniffed from the content, the same way the
// HTTP upload does it.
func openMediaFile(path string) (workspace.MediaHandle, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrMediaUnreadable, path)
	}
	if info.Size() > maxMediaBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrMediaTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMediaUnreadable, err)
	}

	media, err := workspace.DetectMedia(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}

	return workspace.NewMemoryMedia(media, nil), nil
}
