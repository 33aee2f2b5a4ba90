// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
	"strings"
)

// RecordID identifies a Record. It is the creation time in Unix milliseconds
// and is never reused.
type RecordID int64

// Status is the soft-delete flag of a Record.
type Status string

const (
	// StatusActive records are visible in history, search and dashboard views.
	StatusActive Status = "active"

	// StatusTrashed records live in the recycle bin until restored or
	// permanently deleted.
	StatusTrashed Status = "trashed"
)

// IsValid reports whether s is a persisted status value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusTrashed
}

// MediaType is the kind of media the transcript came from.
type MediaType string

const (
	MediaAudio MediaType = "audio"
	MediaVideo MediaType = "video"
)

// IsValid reports whether m is a known media type.
func (m MediaType) IsValid() bool {
	return m == MediaAudio || m == MediaVideo
}

// MediaTypeFromMIME maps a MIME type to a MediaType: video/* is video,
// anything else is treated as audio.
func MediaTypeFromMIME(mime string) MediaType {
	if strings.HasPrefix(strings.ToLower(mime), "video/") {
		return MediaVideo
	}
	return MediaAudio
}

// ManualTranscriptName is the file name of records analysed from a typed or
// pasted transcript with no media attached.
const ManualTranscriptName = "Manual Transcript"

// Record is one persisted history entry: a transcript, its analysis, the
// user's edits and a lifecycle status.
//
// Field names and enum values are the storage contract shared by every
// backend and must not change.
type Record struct {
	// ID is the primary key, unique across active and trashed records.
	ID RecordID `json:"id"`

	// FileName is the original media name or ManualTranscriptName.
	FileName string `json:"fileName"`

	// Transcript is the raw or user-edited transcript text.
	Transcript string `json:"transcript"`

	// Analysis is always present once the record is committed.
	Analysis *Analysis `json:"analysis"`

	// Persona is the lens selected at analysis time.
	Persona Persona `json:"persona"`

	// Date is the human-readable creation timestamp.
	Date string `json:"date"`

	MediaType MediaType `json:"mediaType"`

	// Notes is a free-text user annotation.
	Notes string `json:"notes,omitempty"`

	// Tags are user- or AI-suggested labels, ordered.
	Tags []string `json:"tags,omitempty"`

	// CustomEntitiesInput is the comma-separated entity list requested at
	// analysis time.
	CustomEntitiesInput string `json:"customEntitiesInput,omitempty"`

	Status Status `json:"status"`
}

// HasAnalysis reports whether the record carries an analysis result.
func (r Record) HasAnalysis() bool {
	return r.Analysis != nil
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.Tags = slices.Clone(r.Tags)
	r.Analysis = r.Analysis.Clone()
	return r
}

// UnmarshalJSON decodes a record and upgrades entries written by older
// builds: the persona used to be stored under "analysisPersona" with its
// display label, and a missing status means active.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	var aux struct {
		plain
		LegacyPersona *Persona `json:"analysisPersona,omitempty"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*r = Record(aux.plain)
	if r.Persona == "" && aux.LegacyPersona != nil {
		r.Persona = *aux.LegacyPersona
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	if r.MediaType == "" {
		r.MediaType = MediaAudio
	}

	return nil
}

// RecordPatch carries the partial fields of an update. Nil fields are left
// untouched; set fields overwrite the stored value entirely.
type RecordPatch struct {
	FileName            *string   `json:"fileName,omitempty"`
	Transcript          *string   `json:"transcript,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
	Tags                *[]string `json:"tags,omitempty"`
	CustomEntitiesInput *string   `json:"customEntitiesInput,omitempty"`
	Status              *Status   `json:"status,omitempty"`
}

// IsEmpty reports whether the patch sets no field.
func (p RecordPatch) IsEmpty() bool {
	return p.FileName == nil && p.Transcript == nil && p.Notes == nil &&
		p.Tags == nil && p.CustomEntitiesInput == nil && p.Status == nil
}

// Apply returns r with the patch merged in.
func (p RecordPatch) Apply(r Record) Record {
	if p.FileName != nil {
		r.FileName = *p.FileName
	}
	if p.Transcript != nil {
		r.Transcript = *p.Transcript
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Tags != nil {
		r.Tags = slices.Clone(*p.Tags)
	}
	if p.CustomEntitiesInput != nil {
		r.CustomEntitiesInput = *p.CustomEntitiesInput
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}

// ParseTags splits a comma-separated tag input, trimming blanks and dropping
// empty entries.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
