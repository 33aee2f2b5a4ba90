// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-joycribe/models"
)

// topKeywordsLimit is the number of keywords shown on the dashboard.
const topKeywordsLimit = 10

// PersonaCount is the number of analyses made with one persona.
type PersonaCount struct {
	Persona models.Persona `json:"persona"`
	Count   int            `json:"count"`
}

// KeywordCount is the number of analyses mentioning one keyword.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Stats is the aggregate shown on the dashboard.
type Stats struct {
	// Total counts the analysed records.
	Total int `json:"total"`
	// BySentiment always carries all four sentiments, zero counts included.
	BySentiment map[models.Sentiment]int `json:"bySentiment"`
	// ByPersona is sorted by count descending, ties in persona order.
	ByPersona []PersonaCount `json:"byPersona"`
	// TopPersona is the most used persona, empty without analyses.
	TopPersona models.Persona `json:"topPersona,omitempty"`
	// TopKeywords are the most frequent keywords, lowercased.
	TopKeywords []KeywordCount `json:"topKeywords"`
}

// Dashboard aggregates the analysed records of active. Callers pass active
// records so that trashed ones never count.
func Dashboard(active []models.Record) Stats {
	stats := Stats{
		BySentiment: make(map[models.Sentiment]int, len(models.Sentiments)),
		ByPersona:   []PersonaCount{},
		TopKeywords: []KeywordCount{},
	}
	for _, s := range models.Sentiments {
		stats.BySentiment[s] = 0
	}

	personas := make(map[models.Persona]int)
	keywords := make(map[string]int)
	var keywordOrder []string

	for _, r := range active {
		if !r.HasAnalysis() {
			continue
		}
		stats.Total++

		if r.Analysis.Sentiment.IsValid() {
			stats.BySentiment[r.Analysis.Sentiment]++
		}
		personas[r.Persona]++

		for _, kw := range r.Analysis.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if _, seen := keywords[kw]; !seen {
				keywordOrder = append(keywordOrder, kw)
			}
			keywords[kw]++
		}
	}

	for _, p := range models.Personas {
		if n := personas[p]; n > 0 {
			stats.ByPersona = append(stats.ByPersona, PersonaCount{Persona: p, Count: n})
		}
	}
	// stable sort keeps persona order for equal counts
	slices.SortStableFunc(stats.ByPersona, func(a, b PersonaCount) int {
		return b.Count - a.Count
	})
	if len(stats.ByPersona) > 0 {
		stats.TopPersona = stats.ByPersona[0].Persona
	}

	for _, kw := range keywordOrder {
		stats.TopKeywords = append(stats.TopKeywords, KeywordCount{Keyword: kw, Count: keywords[kw]})
	}
	slices.SortStableFunc(stats.TopKeywords, func(a, b KeywordCount) int {
		return b.Count - a.Count
	})
	if len(stats.TopKeywords) > topKeywordsLimit {
		stats.TopKeywords = stats.TopKeywords[:topKeywordsLimit]
	}

	return stats
}
