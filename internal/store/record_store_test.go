// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/validators"
	"github.com/MKhiriev/go-joycribe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func newTestStore(t *testing.T) (*RecordStore, Backend) {
	t.Helper()
	backend := NewMemoryBackend()
	s, err := NewRecordStore(testContext(), backend, logger.Nop())
	require.NoError(t, err)
	return s, backend
}

func newRecord(id models.RecordID, persona models.Persona, sentiment models.Sentiment, tags ...string) models.Record {
	return models.Record{
		ID:         id,
		FileName:   "call.mp3",
		Transcript: "transcript",
		Analysis:   &models.Analysis{Summary: "summary", Sentiment: sentiment},
		Persona:    persona,
		Date:       "1/2/2026, 3:04:05 PM",
		MediaType:  models.MediaAudio,
		Tags:       tags,
		Status:     models.StatusActive,
	}
}

func ids(records []models.Record) []models.RecordID {
	out := make([]models.RecordID, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// flakyBackend wraps a backend and fails or races on demand.
type flakyBackend struct {
	Backend
	loadErr   error
	saveErr   error
	conflicts int
	saves     int
}

func (b *flakyBackend) Load(ctx context.Context) (Snapshot, error) {
	if b.loadErr != nil {
		return Snapshot{}, b.loadErr
	}
	return b.Backend.Load(ctx)
}

func (b *flakyBackend) Save(ctx context.Context, payload []byte, expected string) (string, error) {
	b.saves++
	if b.saveErr != nil {
		return "", b.saveErr
	}
	if b.conflicts > 0 {
		b.conflicts--
		return "", ErrRevisionConflict
	}
	return b.Backend.Save(ctx, payload, expected)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestRecordStore_CreatePrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()

	_, err := s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)
	got, err := s.Create(ctx, newRecord(2, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)

	assert.Equal(t, []models.RecordID{2, 1}, ids(got))
	assert.Equal(t, got, s.List(ctx))
}

func TestRecordStore_CreateDuplicateID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()

	_, err := s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, 1, models.StatusTrashed)
	require.NoError(t, err)

	_, err = s.Create(ctx, newRecord(1, models.PersonaSales, models.SentimentPositive))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRecordID)
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Len(t, s.List(ctx), 1)
}

func TestRecordStore_CreateRejectsInvalidRecord(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := testContext()

	r := newRecord(1, models.PersonaGeneral, models.SentimentNeutral)
	r.Analysis = nil

	_, err := s.Create(ctx, r)

	assert.ErrorIs(t, err, validators.ErrMissingAnalysis)
	snap, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap.Payload)
}

func TestRecordStore_NoDuplicateIDsAcrossOperations(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()

	for i := 1; i <= 5; i++ {
		_, err := s.Create(ctx, newRecord(models.RecordID(i), models.PersonaGeneral, models.SentimentMixed))
		require.NoError(t, err)
	}
	_, _ = s.Create(ctx, newRecord(3, models.PersonaGeneral, models.SentimentMixed))
	_, err := s.DeletePermanently(ctx, 2)
	require.NoError(t, err)
	notes := "n"
	_, err = s.Update(ctx, 4, models.RecordPatch{Notes: &notes})
	require.NoError(t, err)

	seen := map[models.RecordID]bool{}
	for _, r := range s.List(ctx) {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 4)
}

// ── Update / SetStatus ───────────────────────────────────────────────────────

func TestRecordStore_UpdateMergesFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()
	_, err := s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral, "a"))
	require.NoError(t, err)

	notes := "follow up"
	tags := []string{"vip", "renewal"}
	got, err := s.Update(ctx, 1, models.RecordPatch{Notes: &notes, Tags: &tags})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "follow up", got[0].Notes)
	assert.Equal(t, []string{"vip", "renewal"}, got[0].Tags)
	assert.Equal(t, "transcript", got[0].Transcript)
}

func TestRecordStore_UpdateMissingIDIsNoop(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := testContext()
	_, err := s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)
	before, err := backend.Load(ctx)
	require.NoError(t, err)

	notes := "X"
	got, err := s.Update(ctx, 999, models.RecordPatch{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, s.List(ctx), got)
	after, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Revision, after.Revision)
}

func TestRecordStore_UpdateRejectsInvalidStatus(t *testing.T) {
	s, _ := newTestStore(t)
	bad := models.Status("deleted")

	_, err := s.Update(testContext(), 1, models.RecordPatch{Status: &bad})

	assert.ErrorIs(t, err, validators.ErrInvalidStatus)
}

func TestRecordStore_TrashAndRestoreRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()
	_, err := s.Create(ctx, newRecord(7, models.PersonaSales, models.SentimentPositive, "x"))
	require.NoError(t, err)
	before, err := s.Get(ctx, 7)
	require.NoError(t, err)

	_, err = s.SetStatus(ctx, 7, models.StatusTrashed)
	require.NoError(t, err)
	trashed, err := s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTrashed, trashed.Status)

	_, err = s.SetStatus(ctx, 7, models.StatusActive)
	require.NoError(t, err)
	after, err := s.Get(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

// ── Delete / EmptyTrash ──────────────────────────────────────────────────────

func TestRecordStore_DeletePermanentlyIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()
	for i := 1; i <= 3; i++ {
		_, err := s.Create(ctx, newRecord(models.RecordID(i), models.PersonaGeneral, models.SentimentNeutral))
		require.NoError(t, err)
	}

	once, err := s.DeletePermanently(ctx, 2)
	require.NoError(t, err)
	twice, err := s.DeletePermanently(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, []models.RecordID{3, 1}, ids(once))
	assert.Equal(t, once, twice)
}

func TestRecordStore_EmptyTrashKeepsActiveOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()
	for i := 1; i <= 5; i++ {
		_, err := s.Create(ctx, newRecord(models.RecordID(i), models.PersonaGeneral, models.SentimentNeutral))
		require.NoError(t, err)
	}
	_, err := s.SetStatus(ctx, 2, models.StatusTrashed)
	require.NoError(t, err)
	_, err = s.SetStatus(ctx, 4, models.StatusTrashed)
	require.NoError(t, err)

	got, err := s.EmptyTrash(ctx)
	require.NoError(t, err)

	assert.Equal(t, []models.RecordID{5, 3, 1}, ids(got))
	for _, r := range got {
		assert.Equal(t, models.StatusActive, r.Status)
	}
}

// ── Get / List ───────────────────────────────────────────────────────────────

func TestRecordStore_GetNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(testContext(), 42)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordStore_ListReturnsCopies(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := testContext()
	_, err := s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral, "keep"))
	require.NoError(t, err)

	list := s.List(ctx)
	list[0].Tags[0] = "mutated"
	list[0].Analysis.Summary = "mutated"

	fresh := s.List(ctx)
	assert.Equal(t, "keep", fresh[0].Tags[0])
	assert.Equal(t, "summary", fresh[0].Analysis.Summary)
}

// ── persistence failures ─────────────────────────────────────────────────────

func TestRecordStore_SaveFailureKeepsLastConfirmedState(t *testing.T) {
	backend := &flakyBackend{Backend: NewMemoryBackend()}
	s, err := NewRecordStore(testContext(), backend, logger.Nop())
	require.NoError(t, err)
	ctx := testContext()
	_, err = s.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)

	backend.saveErr = errors.New("quota exceeded")
	_, err = s.Create(ctx, newRecord(2, models.PersonaGeneral, models.SentimentNeutral))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, []models.RecordID{1}, ids(s.List(ctx)))

	backend.saveErr = nil
	reloaded, err := s.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RecordID{1}, ids(reloaded))
}

func TestRecordStore_LoadFailure(t *testing.T) {
	backend := &flakyBackend{Backend: NewMemoryBackend(), loadErr: errors.New("disk gone")}

	_, err := NewRecordStore(testContext(), backend, logger.Nop())

	assert.ErrorIs(t, err, ErrPersistence)
}

func TestRecordStore_CorruptSnapshot(t *testing.T) {
	backend := NewMemoryBackend()
	_, err := backend.Save(testContext(), []byte("{not json"), "")
	require.NoError(t, err)

	_, err = NewRecordStore(testContext(), backend, logger.Nop())

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

// ── concurrent writers ───────────────────────────────────────────────────────

func TestRecordStore_RetriesAfterRevisionConflict(t *testing.T) {
	backend := &flakyBackend{Backend: NewMemoryBackend(), conflicts: 2}
	s, err := NewRecordStore(testContext(), backend, logger.Nop())
	require.NoError(t, err)

	got, err := s.Create(testContext(), newRecord(1, models.PersonaGeneral, models.SentimentNeutral))

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, backend.saves)
}

func TestRecordStore_GivesUpAfterRepeatedConflicts(t *testing.T) {
	backend := &flakyBackend{Backend: NewMemoryBackend(), conflicts: maxWriteAttempts}
	s, err := NewRecordStore(testContext(), backend, logger.Nop())
	require.NoError(t, err)

	_, err = s.Create(testContext(), newRecord(1, models.PersonaGeneral, models.SentimentNeutral))

	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, ErrRevisionConflict)
	assert.Empty(t, s.List(testContext()))
}

func TestRecordStore_SecondWriterDoesNotLoseUpdates(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := testContext()
	tab1, err := NewRecordStore(ctx, backend, logger.Nop())
	require.NoError(t, err)
	tab2, err := NewRecordStore(ctx, backend, logger.Nop())
	require.NoError(t, err)

	_, err = tab1.Create(ctx, newRecord(1, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)
	got, err := tab2.Create(ctx, newRecord(2, models.PersonaGeneral, models.SentimentNeutral))
	require.NoError(t, err)

	assert.Equal(t, []models.RecordID{2, 1}, ids(got))
	assert.Equal(t, tab2.revision, func() string {
		snap, err := backend.Load(ctx)
		require.NoError(t, err)
		return snap.Revision
	}())
}
