// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service sequences workspace transitions, collaborator calls and
// history store operations. It is the only layer that talks to both the
// store and the collaborators; drivers (HTTP, TUI) talk only to it.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

// Orchestrator drives the workspace of one user.
//
// Every failure is non-fatal: the returned error says what did not happen,
// and its [UserMessage] is stored in the workspace error field where the
// taxonomy requires it.
type Orchestrator interface {
	// Clear resets the workspace.
	Clear() workspace.State

	// Workspace returns the current workspace state.
	Workspace() workspace.State

	// EditWorkspace merges user edits of the in-progress fields.
	EditWorkspace(edit workspace.Edit) (workspace.State, error)

	// SelectMedia starts a fresh workspace around media and transcribes it.
	// The workspace takes ownership of the handle.
	SelectMedia(ctx context.Context, media workspace.MediaHandle) (workspace.State, error)

	// SelectRecord resumes work on a saved record.
	SelectRecord(ctx context.Context, id models.RecordID) (workspace.State, error)

	// RerunAnalysis seeds a fresh workspace from a saved record without
	// selecting it.
	RerunAnalysis(ctx context.Context, id models.RecordID) (workspace.State, error)

	// RunAnalysis analyses the workspace transcript and commits a new record.
	RunAnalysis(ctx context.Context) (models.Record, error)

	// UpdateNotesOrTags saves notes and tags of a record. A missing id is a
	// no-op and returns the unchanged collection.
	UpdateNotesOrTags(ctx context.Context, id models.RecordID, patch models.RecordPatch) ([]models.Record, error)

	MoveToTrash(ctx context.Context, id models.RecordID) error
	Restore(ctx context.Context, id models.RecordID) error
	DeleteForever(ctx context.Context, id models.RecordID) error
	EmptyTrash(ctx context.Context) error
}

// HistoryService serves the read-only views of the history.
type HistoryService interface {
	// History returns the active analysed records matching filter.
	History(ctx context.Context, filter view.Filter) []models.Record

	// Trash returns the recycle bin.
	Trash(ctx context.Context) []models.Record

	// Dashboard aggregates the active records.
	Dashboard(ctx context.Context) view.Stats

	// Get returns one record by id.
	Get(ctx context.Context, id models.RecordID) (models.Record, error)

	// Export renders a record as a downloadable document.
	Export(ctx context.Context, id models.RecordID, format export.Format) (export.Document, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SettingsService keeps the user preferences across sessions.
type SettingsService interface {
	// Theme returns the saved theme name, or fallback when none was saved
	// or the settings cannot be read.
	Theme(ctx context.Context, fallback string) string

	// SaveTheme records name as the selected theme.
	SaveTheme(ctx context.Context, name string) error
}

// HistoryRefreshJob periodically reloads the history from its backend.
type HistoryRefreshJob interface {
	// Start launches the job. It is a no-op when the job is disabled.
	Start(ctx context.Context)
	// Stop stops the job and waits for it to exit.
	Stop()
}
