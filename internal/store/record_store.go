// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/validators"
	"github.com/MKhiriev/go-joycribe/models"
)

// maxWriteAttempts bounds how many times a mutation is re-read and
// re-applied after a revision conflict.
const maxWriteAttempts = 3

// mutation transforms the freshly loaded collection. It reports whether the
// collection changed; an unchanged collection is not written back.
type mutation func(records []models.Record) ([]models.Record, bool, error)

// RecordStore is the sole owner of the durable record collection.
//
// Every write reads the whole snapshot from the backend, applies the change
// in memory and writes the whole snapshot back under the revision it read.
// The cached collection only advances once the backend confirms the write.
type RecordStore struct {
	backend   Backend
	validator validators.Validator
	logger    *logger.Logger

	mu       sync.Mutex
	records  []models.Record
	revision string
}

var _ HistoryRepository = (*RecordStore)(nil)

// NewRecordStore loads the current snapshot from backend and returns a store
// serving it.
func NewRecordStore(ctx context.Context, backend Backend, log *logger.Logger) (*RecordStore, error) {
	s := &RecordStore{
		backend:   backend,
		validator: validators.NewRecordValidator(),
		logger:    log,
	}

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *RecordStore) List(ctx context.Context) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneRecords(s.records)
}

func (s *RecordStore) Get(ctx context.Context, id models.RecordID) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.records, id)
	if idx < 0 {
		return models.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	return s.records[idx].Clone(), nil
}

func (s *RecordStore) Create(ctx context.Context, record models.Record) ([]models.Record, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "RecordStore.Create").Int64("id", int64(record.ID)).Msg("invalid record")
		return nil, err
	}

	return s.mutate(ctx, "RecordStore.Create", func(records []models.Record) ([]models.Record, bool, error) {
		if indexOf(records, record.ID) >= 0 {
			return nil, false, fmt.Errorf("%w: id %d", ErrDuplicateRecordID, record.ID)
		}
		return slices.Insert(records, 0, record.Clone()), true, nil
	})
}

func (s *RecordStore) Update(ctx context.Context, id models.RecordID, patch models.RecordPatch) ([]models.Record, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", validators.ErrInvalidStatus, *patch.Status)
	}

	return s.mutate(ctx, "RecordStore.Update", func(records []models.Record) ([]models.Record, bool, error) {
		idx := indexOf(records, id)
		if idx < 0 || patch.IsEmpty() {
			return records, false, nil
		}
		records[idx] = patch.Apply(records[idx])
		return records, true, nil
	})
}

func (s *RecordStore) SetStatus(ctx context.Context, id models.RecordID, status models.Status) ([]models.Record, error) {
	return s.Update(ctx, id, models.RecordPatch{Status: &status})
}

func (s *RecordStore) DeletePermanently(ctx context.Context, id models.RecordID) ([]models.Record, error) {
	return s.mutate(ctx, "RecordStore.DeletePermanently", func(records []models.Record) ([]models.Record, bool, error) {
		idx := indexOf(records, id)
		if idx < 0 {
			return records, false, nil
		}
		return slices.Delete(records, idx, idx+1), true, nil
	})
}

func (s *RecordStore) EmptyTrash(ctx context.Context) ([]models.Record, error) {
	return s.mutate(ctx, "RecordStore.EmptyTrash", func(records []models.Record) ([]models.Record, bool, error) {
		kept := slices.DeleteFunc(records, func(r models.Record) bool {
			return r.Status == models.StatusTrashed
		})
		return kept, len(kept) != len(records), nil
	})
}

func (s *RecordStore) Reload(ctx context.Context) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, snap, err := s.load(ctx, "RecordStore.Reload")
	if err != nil {
		return nil, err
	}

	s.records = records
	s.revision = snap.Revision

	return cloneRecords(records), nil
}

// Close closes the underlying backend.
func (s *RecordStore) Close() error {
	return s.backend.Close()
}

func (s *RecordStore) mutate(ctx context.Context, fn string, apply mutation) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		current, snap, err := s.load(ctx, fn)
		if err != nil {
			return nil, err
		}

		next, changed, err := apply(cloneRecords(current))
		if err != nil {
			return nil, err
		}

		if !changed {
			s.records = current
			s.revision = snap.Revision
			return cloneRecords(current), nil
		}

		payload, err := encodeRecords(next)
		if err != nil {
			s.logger.Err(err).Str("func", fn).Msg("error encoding history")
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}

		revision, err := s.backend.Save(ctx, payload, snap.Revision)
		if errors.Is(err, ErrRevisionConflict) {
			s.logger.Warn().Str("func", fn).Int("attempt", attempt).Msg("history changed by another writer, re-reading")
			continue
		}
		if err != nil {
			s.logger.Err(err).Str("func", fn).Msg("error saving history")
			return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
		}

		s.records = next
		s.revision = revision

		return cloneRecords(next), nil
	}

	s.logger.Error().Str("func", fn).Int("attempts", maxWriteAttempts).Msg("giving up after repeated revision conflicts")
	return nil, fmt.Errorf("%w: %w", ErrPersistence, ErrRevisionConflict)
}

func (s *RecordStore) load(ctx context.Context, fn string) ([]models.Record, Snapshot, error) {
	snap, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Msg("error loading history")
		return nil, Snapshot{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	records, err := decodeRecords(snap.Payload)
	if err != nil {
		s.logger.Err(err).Str("func", fn).Str("revision", snap.Revision).Msg("error decoding history")
		return nil, Snapshot{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return records, snap, nil
}

func indexOf(records []models.Record, id models.RecordID) int {
	return slices.IndexFunc(records, func(r models.Record) bool {
		return r.ID == id
	})
}
