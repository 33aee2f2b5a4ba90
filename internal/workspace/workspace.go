// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workspace holds the transient editing state of the record being
// produced or viewed. Nothing in a Session is persisted.
//
// A Session models a single logical thread of control. It is guarded by a
// mutex only because the HTTP and TUI drivers touch it from different
// goroutines.
package workspace

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-joycribe/models"
)

// MediaHandle is a locally held media resource, e.g. a preview buffer or a
// temporary file. The session owns it for the duration of the current
// selection and releases it on every transition that replaces it.
type MediaHandle interface {
	// Media returns the media handed to the transcription collaborator.
	Media() models.Media
	// Release frees the held resource. It is called exactly once.
	Release()
}

// Generation identifies a workspace context. Results of asynchronous calls
// are applied only while the generation they were issued against is current.
type Generation uint64

// State is an immutable copy of the session handed to drivers.
type State struct {
	// Selected is the record being viewed or edited, nil when none.
	Selected            *models.Record   `json:"selected,omitempty"`
	Transcript          string           `json:"transcript"`
	Persona             models.Persona   `json:"persona"`
	CustomEntitiesInput string           `json:"customEntitiesInput"`
	Notes               string           `json:"notes"`
	Tags                []string         `json:"tags"`
	MediaType           models.MediaType `json:"mediaType,omitempty"`
	// MediaName is the name of the held media, empty when none.
	MediaName     string     `json:"mediaName,omitempty"`
	Processing    bool       `json:"processing"`
	StatusMessage string     `json:"statusMessage,omitempty"`
	Error         string     `json:"error,omitempty"`
	Generation    Generation `json:"generation"`
}

// Edit carries the user-editable workspace fields. Nil fields are left
// untouched.
type Edit struct {
	Transcript          *string         `json:"transcript,omitempty"`
	Persona             *models.Persona `json:"persona,omitempty"`
	CustomEntitiesInput *string         `json:"customEntitiesInput,omitempty"`
	Notes               *string         `json:"notes,omitempty"`
	Tags                *[]string       `json:"tags,omitempty"`
}

// Session is the transient workspace of one user.
type Session struct {
	mu sync.Mutex

	selected            *models.Record
	transcript          string
	persona             models.Persona
	customEntitiesInput string
	notes               string
	tags                []string
	mediaType           models.MediaType
	media               MediaHandle

	processing    bool
	statusMessage string
	errMessage    string

	generation Generation
}

// NewSession returns an empty session with the default persona.
func NewSession() *Session {
	return &Session{persona: models.PersonaGeneral}
}

// Clear resets every transient field to its default and releases the held
// media.
func (s *Session) Clear() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.generation
}

// LoadForEdit clears the session and resumes work on record, which becomes
// the selection. Notes and tags are carried over.
func (s *Session) LoadForEdit(record models.Record) Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.seed(record)
	selected := record.Clone()
	s.selected = &selected

	return s.generation
}

// LoadForEditIfCurrent is LoadForEdit for an operation issued against gen.
// It leaves the session untouched once gen is stale.
func (s *Session) LoadForEditIfCurrent(gen Generation, record models.Record) (Generation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return s.generation, false
	}
	s.reset()
	s.seed(record)
	selected := record.Clone()
	s.selected = &selected

	return s.generation, true
}

// PrepareRerun clears the session and seeds it from record for a fresh
// analysis run. Nothing is selected afterwards, so the new analysis produces
// a new record instead of editing the old one.
func (s *Session) PrepareRerun(record models.Record) Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.seed(record)

	return s.generation
}

// SetMediaAndBegin clears the session, installs handle as the held media and
// marks the operation started on it as in flight, all in one step. The
// previous handle is released. It returns the new generation.
func (s *Session) SetMediaAndBegin(handle MediaHandle, message string) Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.media = handle
	if handle != nil {
		s.mediaType = handle.Media().Type()
	}
	s.generation++
	s.begin(message)

	return s.generation
}

// Media returns the held media and whether there is one.
func (s *Session) Media() (models.Media, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.media == nil {
		return models.Media{}, false
	}
	return s.media.Media(), true
}

// TryBeginProcessing marks an operation as in flight and clears the error,
// unless another operation is already running. It returns the generation the
// operation runs in and whether processing was started.
func (s *Session) TryBeginProcessing(message string) (Generation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processing {
		return s.generation, false
	}
	s.begin(message)

	return s.generation, true
}

// EndProcessingIfCurrent marks the operation issued against gen as finished.
// A non-empty errMessage is stored as the session error; an empty one clears
// it. It does nothing and returns false once gen is stale, so a superseded
// call cannot overwrite the state of the context that replaced it.
func (s *Session) EndProcessingIfCurrent(gen Generation, errMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.processing = false
	s.statusMessage = ""
	s.errMessage = errMessage

	return true
}

// SetError stores message as the session error without touching the
// processing flag.
func (s *Session) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMessage = message
}

// Apply merges the edit into the working fields.
func (s *Session) Apply(edit Edit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if edit.Transcript != nil {
		s.transcript = *edit.Transcript
	}
	if edit.Persona != nil {
		s.persona = *edit.Persona
	}
	if edit.CustomEntitiesInput != nil {
		s.customEntitiesInput = *edit.CustomEntitiesInput
	}
	if edit.Notes != nil {
		s.notes = *edit.Notes
	}
	if edit.Tags != nil {
		s.tags = slices.Clone(*edit.Tags)
	}
}

// SetTranscriptIfCurrent stores transcript only while gen is still the
// current generation. It reports whether the transcript was stored.
func (s *Session) SetTranscriptIfCurrent(gen Generation, transcript string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.transcript = transcript
	return true
}

// Refresh replaces the mirrored selection with record when it is the
// selected one. Notes and tags follow the stored values.
func (s *Session) Refresh(record models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil || s.selected.ID != record.ID {
		return false
	}
	selected := record.Clone()
	s.selected = &selected
	s.notes = record.Notes
	s.tags = slices.Clone(record.Tags)

	return true
}

// SelectedID returns the id of the selected record and whether one is
// selected.
func (s *Session) SelectedID() (models.RecordID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return 0, false
	}
	return s.selected.ID, true
}

// Generation returns the current generation.
func (s *Session) Generation() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// IsCurrent reports whether gen is the current generation.
func (s *Session) IsCurrent(gen Generation) bool {
	return s.Generation() == gen
}

// Snapshot returns a deep copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Transcript:          s.transcript,
		Persona:             s.persona,
		CustomEntitiesInput: s.customEntitiesInput,
		Notes:               s.notes,
		Tags:                slices.Clone(s.tags),
		MediaType:           s.mediaType,
		Processing:          s.processing,
		StatusMessage:       s.statusMessage,
		Error:               s.errMessage,
		Generation:          s.generation,
	}
	if s.selected != nil {
		selected := s.selected.Clone()
		st.Selected = &selected
	}
	if s.media != nil {
		st.MediaName = s.media.Media().Name
	}

	return st
}

// reset must be called with mu held.
func (s *Session) reset() {
	s.releaseMedia()

	s.selected = nil
	s.transcript = ""
	s.persona = models.PersonaGeneral
	s.customEntitiesInput = ""
	s.notes = ""
	s.tags = nil
	s.mediaType = ""
	s.processing = false
	s.statusMessage = ""
	s.errMessage = ""
	s.generation++
}

// begin must be called with mu held.
func (s *Session) begin(message string) {
	s.processing = true
	s.statusMessage = message
	s.errMessage = ""
}

func (s *Session) seed(record models.Record) {
	s.transcript = record.Transcript
	s.persona = record.Persona
	s.customEntitiesInput = record.CustomEntitiesInput
	s.notes = record.Notes
	s.tags = slices.Clone(record.Tags)
	s.mediaType = record.MediaType
}

func (s *Session) releaseMedia() {
	if s.media != nil {
		s.media.Release()
		s.media = nil
	}
}
