// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/MKhiriev/go-joycribe/internal/utils"
)

// memoryBackend keeps the snapshot in process memory. History is lost when
// the process exits.
type memoryBackend struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() Backend {
	return &memoryBackend{}
}

func (b *memoryBackend) Load(ctx context.Context) (Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	payload := bytes.Clone(b.payload)
	return Snapshot{Payload: payload, Revision: utils.Revision(payload)}, nil
}

func (b *memoryBackend) Save(ctx context.Context, payload []byte, expectedRevision string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if utils.Revision(b.payload) != expectedRevision {
		return "", ErrRevisionConflict
	}

	b.payload = bytes.Clone(payload)
	return utils.Revision(b.payload), nil
}

func (b *memoryBackend) Close() error {
	return nil
}
