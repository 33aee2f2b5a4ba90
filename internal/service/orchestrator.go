// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-joycribe/internal/adapter"
	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

// RecordDateLayout is the human-readable creation timestamp of a record.
const RecordDateLayout = "1/2/2006, 3:04:05 PM"

type orchestrator struct {
	history     store.HistoryRepository
	transcriber adapter.Transcriber
	analyzer    adapter.Analyzer
	session     *workspace.Session

	now    func() time.Time
	logger *logger.Logger
}

// NewOrchestrator returns an Orchestrator driving session.
func NewOrchestrator(
	history store.HistoryRepository,
	transcriber adapter.Transcriber,
	analyzer adapter.Analyzer,
	session *workspace.Session,
	logger *logger.Logger,
) Orchestrator {
	return &orchestrator{
		history:     history,
		transcriber: transcriber,
		analyzer:    analyzer,
		session:     session,
		now:         time.Now,
		logger:      logger,
	}
}

func (o *orchestrator) Clear() workspace.State {
	o.session.Clear()
	return o.session.Snapshot()
}

func (o *orchestrator) Workspace() workspace.State {
	return o.session.Snapshot()
}

func (o *orchestrator) EditWorkspace(edit workspace.Edit) (workspace.State, error) {
	if edit.Persona != nil && !edit.Persona.IsValid() {
		return o.session.Snapshot(), fmt.Errorf("%w: %q", ErrInvalidPersona, *edit.Persona)
	}

	o.session.Apply(edit)
	return o.session.Snapshot(), nil
}

func (o *orchestrator) SelectMedia(ctx context.Context, media workspace.MediaHandle) (workspace.State, error) {
	if media == nil {
		return o.session.Snapshot(), ErrNoMedia
	}

	gen := o.session.SetMediaAndBegin(media, app.MsgTranscribing)

	m := media.Media()
	log := o.logger.With().Str("file", m.Name).Uint64("generation", uint64(gen)).Logger()

	transcript, err := o.transcriber.Transcribe(ctx, m)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
		if !o.session.EndProcessingIfCurrent(gen, UserMessage(err)) {
			log.Warn().Err(err).Str("func", "orchestrator.SelectMedia").Msg("discarding transcription failure of a stale workspace")
			return o.session.Snapshot(), fmt.Errorf("%w: %w", ErrStaleWorkspace, err)
		}
		log.Err(err).Str("func", "orchestrator.SelectMedia").Msg("error transcribing media")
		return o.session.Snapshot(), err
	}

	if !o.session.SetTranscriptIfCurrent(gen, transcript) {
		log.Warn().Str("func", "orchestrator.SelectMedia").Msg("discarding transcript of a stale workspace")
		return o.session.Snapshot(), ErrStaleWorkspace
	}
	o.session.EndProcessingIfCurrent(gen, "")

	log.Info().Int("transcript_length", len(transcript)).Msg("media transcribed")
	return o.session.Snapshot(), nil
}

func (o *orchestrator) SelectRecord(ctx context.Context, id models.RecordID) (workspace.State, error) {
	record, err := o.history.Get(ctx, id)
	if err != nil {
		return o.session.Snapshot(), err
	}

	o.session.LoadForEdit(record)
	return o.session.Snapshot(), nil
}

func (o *orchestrator) RerunAnalysis(ctx context.Context, id models.RecordID) (workspace.State, error) {
	record, err := o.history.Get(ctx, id)
	if err != nil {
		return o.session.Snapshot(), err
	}

	o.session.PrepareRerun(record)
	return o.session.Snapshot(), nil
}

func (o *orchestrator) RunAnalysis(ctx context.Context) (models.Record, error) {
	st := o.session.Snapshot()
	if strings.TrimSpace(st.Transcript) == "" {
		o.session.SetError(UserMessage(ErrEmptyTranscript))
		return models.Record{}, ErrEmptyTranscript
	}

	gen, started := o.session.TryBeginProcessing(app.MsgAnalyzing)
	if !started {
		return models.Record{}, ErrWorkspaceBusy
	}
	// the working fields may have changed between the snapshot and the start
	st = o.session.Snapshot()

	log := o.logger.With().Str("persona", string(st.Persona)).Uint64("generation", uint64(gen)).Logger()

	analysis, err := o.analyzer.Analyze(ctx, st.Transcript, st.Persona, st.CustomEntitiesInput)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
		if !o.session.EndProcessingIfCurrent(gen, UserMessage(err)) {
			log.Warn().Err(err).Str("func", "orchestrator.RunAnalysis").Msg("discarding analysis failure of a stale workspace")
			return models.Record{}, fmt.Errorf("%w: %w", ErrStaleWorkspace, err)
		}
		log.Err(err).Str("func", "orchestrator.RunAnalysis").Msg("error analyzing transcript")
		return models.Record{}, err
	}

	if !o.session.IsCurrent(gen) {
		log.Warn().Str("func", "orchestrator.RunAnalysis").Msg("discarding analysis of a stale workspace")
		return models.Record{}, ErrStaleWorkspace
	}

	record := o.newRecord(ctx, st, analysis)

	if _, err = o.history.Create(ctx, record); err != nil {
		o.session.EndProcessingIfCurrent(gen, UserMessage(err))
		log.Err(err).Str("func", "orchestrator.RunAnalysis").Int64("id", int64(record.ID)).Msg("error saving analysis record")
		return models.Record{}, err
	}

	if _, ok := o.session.LoadForEditIfCurrent(gen, record); !ok {
		log.Warn().Str("func", "orchestrator.RunAnalysis").Int64("id", int64(record.ID)).Msg("record saved after the workspace moved on")
	}

	log.Info().Int64("id", int64(record.ID)).Msg("analysis record created")
	return record, nil
}

func (o *orchestrator) UpdateNotesOrTags(ctx context.Context, id models.RecordID, patch models.RecordPatch) ([]models.Record, error) {
	patch = models.RecordPatch{Notes: patch.Notes, Tags: patch.Tags}

	records, err := o.history.Update(ctx, id, patch)
	if err != nil {
		// silent loss of edits is the worst outcome, so the failure is surfaced
		o.session.SetError(UserMessage(err))
		o.logger.Err(err).Str("func", "orchestrator.UpdateNotesOrTags").Int64("id", int64(id)).Msg("error saving notes or tags")
		return nil, err
	}

	if idx := slices.IndexFunc(records, func(r models.Record) bool { return r.ID == id }); idx >= 0 {
		o.session.Refresh(records[idx])
	}

	return records, nil
}

func (o *orchestrator) MoveToTrash(ctx context.Context, id models.RecordID) error {
	if _, err := o.history.SetStatus(ctx, id, models.StatusTrashed); err != nil {
		return o.surface("orchestrator.MoveToTrash", id, err)
	}

	o.clearIfSelected(id)
	return nil
}

func (o *orchestrator) Restore(ctx context.Context, id models.RecordID) error {
	if _, err := o.history.SetStatus(ctx, id, models.StatusActive); err != nil {
		return o.surface("orchestrator.Restore", id, err)
	}
	return nil
}

func (o *orchestrator) DeleteForever(ctx context.Context, id models.RecordID) error {
	if _, err := o.history.DeletePermanently(ctx, id); err != nil {
		return o.surface("orchestrator.DeleteForever", id, err)
	}

	o.clearIfSelected(id)
	return nil
}

func (o *orchestrator) EmptyTrash(ctx context.Context) error {
	selected, hasSelection := o.session.SelectedID()
	wasTrashed := false
	if hasSelection {
		record, err := o.history.Get(ctx, selected)
		wasTrashed = err == nil && record.Status == models.StatusTrashed
	}

	if _, err := o.history.EmptyTrash(ctx); err != nil {
		return o.surface("orchestrator.EmptyTrash", 0, err)
	}

	if wasTrashed {
		o.clearIfSelected(selected)
	}
	return nil
}

// newRecord builds the record committed after a successful analysis.
func (o *orchestrator) newRecord(ctx context.Context, st workspace.State, analysis models.Analysis) models.Record {
	now := o.now()

	fileName := models.ManualTranscriptName
	mediaType := models.MediaAudio
	switch {
	case st.MediaName != "":
		fileName = st.MediaName
		mediaType = st.MediaType
	case st.Selected != nil:
		fileName = st.Selected.FileName
		mediaType = st.Selected.MediaType
	}
	if !mediaType.IsValid() {
		mediaType = models.MediaAudio
	}

	tags := slices.Clone(st.Tags)
	if len(tags) == 0 {
		tags = slices.Clone(analysis.SuggestedTags)
	}

	return models.Record{
		ID:                  o.freshID(ctx, now),
		FileName:            fileName,
		Transcript:          st.Transcript,
		Analysis:            &analysis,
		Persona:             st.Persona,
		Date:                now.Format(RecordDateLayout),
		MediaType:           mediaType,
		Notes:               "",
		Tags:                tags,
		CustomEntitiesInput: st.CustomEntitiesInput,
		Status:              models.StatusActive,
	}
}

// freshID returns now in Unix milliseconds, bumped past any id already in
// the collection so that ids are never reused.
func (o *orchestrator) freshID(ctx context.Context, now time.Time) models.RecordID {
	id := models.RecordID(now.UnixMilli())

	taken := make(map[models.RecordID]struct{})
	for _, r := range o.history.List(ctx) {
		taken[r.ID] = struct{}{}
	}
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

func (o *orchestrator) clearIfSelected(id models.RecordID) {
	if selected, ok := o.session.SelectedID(); ok && selected == id {
		o.session.Clear()
	}
}

func (o *orchestrator) surface(fn string, id models.RecordID, err error) error {
	o.session.SetError(UserMessage(err))
	o.logger.Err(err).Str("func", fn).Int64("id", int64(id)).Msg("history operation failed")
	return err
}
