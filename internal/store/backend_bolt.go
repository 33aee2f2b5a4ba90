// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-joycribe/internal/utils"
)

// historyBucket holds the history blob of the key-value backend.
var historyBucket = []byte("history")

// DefaultBoltKey is the key the browser build stored its history under.
const DefaultBoltKey = "joycribeHistory_v4"

// boltBackend keeps the serialized history as a single value under one key,
// the way the browser build used local storage. The revision check and the
// write share one bolt transaction.
type boltBackend struct {
	db  *bolt.DB
	key []byte
}

// NewBoltBackend opens (or creates) the bolt database at path and makes sure
// the history bucket exists. An empty key falls back to [DefaultBoltKey].
func NewBoltBackend(path, key string) (Backend, error) {
	if key == "" {
		key = DefaultBoltKey
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create bolt dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history bucket: %w", err)
	}

	return &boltBackend{db: db, key: []byte(key)}, nil
}

func (b *boltBackend) Load(ctx context.Context) (Snapshot, error) {
	var payload []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(historyBucket).Get(b.key); v != nil {
			// values are only valid for the life of the transaction
			payload = bytes.Clone(v)
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("read history blob: %w", err)
	}

	return Snapshot{Payload: payload, Revision: utils.Revision(payload)}, nil
}

func (b *boltBackend) Save(ctx context.Context, payload []byte, expectedRevision string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(historyBucket)
		if utils.Revision(bucket.Get(b.key)) != expectedRevision {
			return ErrRevisionConflict
		}
		return bucket.Put(b.key, payload)
	})
	if err != nil {
		return "", fmt.Errorf("write history blob: %w", err)
	}

	return utils.Revision(payload), nil
}

func (b *boltBackend) Close() error {
	return b.db.Close()
}
