// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view derives display subsets from the record collection.
//
// Every function here is pure: it reads its input, allocates a new slice and
// never mutates or aliases the records it was given. Views are recomputed on
// every collection or filter change; there is no cached index.
package view

import (
	"strings"

	"github.com/MKhiriev/go-joycribe/models"
)

// Filter holds the search and filter parameters of the history view. Zero
// values match every record.
type Filter struct {
	// Search is matched case-insensitively against the file name,
	// transcript, summary and tags.
	Search string `json:"q,omitempty"`
	// Sentiment is matched exactly against analysis.sentiment.
	Sentiment models.Sentiment `json:"sentiment,omitempty"`
	// Persona is matched exactly against the record persona.
	Persona models.Persona `json:"persona,omitempty"`
}

// IsEmpty reports whether f matches every analysed record.
func (f Filter) IsEmpty() bool {
	return f.Search == "" && f.Sentiment == "" && f.Persona == ""
}

// Active returns the records with status active, in input order.
func Active(records []models.Record) []models.Record {
	return byStatus(records, models.StatusActive)
}

// Trashed returns the records in the recycle bin, in input order.
func Trashed(records []models.Record) []models.Record {
	return byStatus(records, models.StatusTrashed)
}

// Filtered returns the records of active that carry an analysis and satisfy
// every predicate of f, in input order.
func Filtered(active []models.Record, f Filter) []models.Record {
	term := strings.ToLower(f.Search)

	out := make([]models.Record, 0, len(active))
	for _, r := range active {
		if !r.HasAnalysis() {
			continue
		}
		if f.Sentiment != "" && r.Analysis.Sentiment != f.Sentiment {
			continue
		}
		if f.Persona != "" && r.Persona != f.Persona {
			continue
		}
		if term != "" && !matches(r, term) {
			continue
		}
		out = append(out, r.Clone())
	}

	return out
}

func byStatus(records []models.Record, status models.Status) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.Status == status {
			out = append(out, r.Clone())
		}
	}
	return out
}

// matches expects term to be lowercased already.
func matches(r models.Record, term string) bool {
	if containsFold(r.FileName, term) || containsFold(r.Transcript, term) || containsFold(r.Analysis.Summary, term) {
		return true
	}
	for _, tag := range r.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
