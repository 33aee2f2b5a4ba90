// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-joycribe/models"
)

// Snapshot is the whole persisted history as stored by a [Backend].
type Snapshot struct {
	// Payload is the serialized record collection. It is nil when nothing
	// has been persisted yet.
	Payload []byte

	// Revision is the ETag of Payload. It is empty when Payload is nil.
	Revision string
}

// Backend persists the record collection as one opaque snapshot. Every
// implementation replaces the snapshot atomically: a reader observes either
// the previous payload or the new one, never a mix.
type Backend interface {
	// Load returns the current snapshot. A missing snapshot is not an error.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the snapshot with payload if the stored revision still
	// equals expectedRevision, and returns the new revision. It returns
	// [ErrRevisionConflict] when another writer replaced the snapshot in the
	// meantime.
	Save(ctx context.Context, payload []byte, expectedRevision string) (string, error)

	// Close releases the underlying file, database or connection.
	Close() error
}

// HistoryRepository is the durable record collection consumed by the service
// layer. Every write returns the full updated collection in storage order,
// newest first.
type HistoryRepository interface {
	// List returns the last confirmed collection. It never touches the backend.
	List(ctx context.Context) []models.Record

	// Get returns the record with id, or [ErrRecordNotFound].
	Get(ctx context.Context, id models.RecordID) (models.Record, error)

	// Create prepends record. It fails with [ErrDuplicateRecordID] if the id
	// is already taken by an active or trashed record.
	Create(ctx context.Context, record models.Record) ([]models.Record, error)

	// Update merges patch into the record with id. A missing id is a no-op.
	Update(ctx context.Context, id models.RecordID, patch models.RecordPatch) ([]models.Record, error)

	// SetStatus moves the record with id to status. A missing id is a no-op.
	SetStatus(ctx context.Context, id models.RecordID, status models.Status) ([]models.Record, error)

	// DeletePermanently removes the record with id. Deleting a missing id
	// succeeds.
	DeletePermanently(ctx context.Context, id models.RecordID) ([]models.Record, error)

	// EmptyTrash removes every trashed record.
	EmptyTrash(ctx context.Context) ([]models.Record, error)

	// Reload re-reads the backend and replaces the cached collection.
	Reload(ctx context.Context) ([]models.Record, error)
}

// SettingsRepository persists [models.Settings].
type SettingsRepository interface {
	// Load returns the saved settings. Nothing saved yet yields the zero
	// value and no error.
	Load(ctx context.Context) (models.Settings, error)

	// Save replaces the saved settings.
	Save(ctx context.Context, settings models.Settings) error
}
