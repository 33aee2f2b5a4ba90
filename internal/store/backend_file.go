// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-joycribe/internal/utils"
)

// fileBackend stores the history as a JSON array in a single file, the
// layout of the desktop build's history.json.
//
// Writes go to a synced temporary file in the same directory which is then
// renamed over the target (see writeFileAtomic), so a crash never leaves a
// half-written history behind.
type fileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend opens the history file at path, creating its directory and
// an empty "[]" history when the file does not exist yet.
func NewFileBackend(path string) (Backend, error) {
	b := &fileBackend{path: path}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = b.write(emptyCollection); err != nil {
			return nil, fmt.Errorf("initialise history file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat history file: %w", err)
	}

	return b, nil
}

func (b *fileBackend) Load(ctx context.Context) (Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	payload, err := b.read()
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Payload: payload, Revision: utils.Revision(payload)}, nil
}

func (b *fileBackend) Save(ctx context.Context, payload []byte, expectedRevision string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	current, err := b.read()
	if err != nil {
		return "", err
	}
	if utils.Revision(current) != expectedRevision {
		return "", ErrRevisionConflict
	}

	if err = b.write(payload); err != nil {
		return "", err
	}

	return utils.Revision(payload), nil
}

func (b *fileBackend) Close() error {
	return nil
}

// read returns nil when the file is missing.
func (b *fileBackend) read() ([]byte, error) {
	payload, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return payload, nil
}

func (b *fileBackend) write(payload []byte) error {
	if err := writeFileAtomic(b.path, payload, 0o600); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
