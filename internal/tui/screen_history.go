// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const summaryWidth = 70

type historyModel struct {
	items     []models.Record
	idx       int
	filter    view.Filter
	search    textinput.Model
	searching bool
	loading   bool
	status    string
}

func newHistoryModel() historyModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "file name, summary, tags or notes"
	ti.CharLimit = 200

	return historyModel{search: ti, loading: true}
}

func (m historyModel) current() (models.Record, bool) {
	return currentOf(m.items, m.idx)
}

func (m *historyModel) setItems(items []models.Record) {
	m.loading = false
	m.items = items
	m.idx = clampIndex(m.idx, len(items))
}

// nextSentiment cycles "" (any) → Positive → ... → Mixed → "".
func nextSentiment(s models.Sentiment) models.Sentiment {
	return cycle(models.Sentiments, s)
}

// nextPersona cycles "" (any) through every persona and back.
func nextPersona(p models.Persona) models.Persona {
	return cycle(models.Personas, p)
}

func cycle[T comparable](values []T, cur T) T {
	var zero T
	if cur == zero {
		return values[0]
	}
	for i, v := range values {
		if v == cur {
			if i == len(values)-1 {
				return zero
			}
			return values[i+1]
		}
	}
	return zero
}

func (m historyModel) View(s styles, spin string) string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(s.help.Render(fmt.Sprintf("sentiment: %s   persona: %s",
		anyIfEmpty(string(m.filter.Sentiment)), anyIfEmpty(personaLabel(m.filter.Persona)))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0 && !m.filter.IsEmpty():
		b.WriteString("No records match the filters\n")
	case len(m.items) == 0:
		b.WriteString("No analysed calls yet. Press n to start one.\n")
	default:
		for i, r := range m.items {
			b.WriteString(recordRow(s, r, i == m.idx))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + s.accent.Render(m.status) + "\n")
	}

	title := "JOYCRIBE · HISTORY"
	if spin != "" {
		title += "  " + spin
	}

	hotKeys := "enter: open  r: rerun  d: trash  c: copy export  /: search  s: sentiment  p: persona\n" +
		"  n: new  b: recycle bin  g: dashboard  ,: settings  q: quit"
	if m.searching {
		hotKeys = "enter / esc: stop searching"
	}

	return s.renderPage(title, b.String(), hotKeys)
}

func recordRow(s styles, r models.Record, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	sentiment := "-"
	summary := ""
	if r.Analysis != nil {
		sentiment = string(r.Analysis.Sentiment)
		summary = oneLine(r.Analysis.Summary)
	}

	line := fmt.Sprintf("%s[%s] %s  %s  %s", cursor, sentiment, r.FileName, r.Persona.Label(), r.Date)
	if len(r.Tags) > 0 {
		line += "  #" + strings.Join(r.Tags, " #")
	}
	if selected {
		line = s.selected.Render(line)
	}

	out := line + "\n"
	if summary != "" {
		out += "    " + s.help.Render(fitText(summary, summaryWidth)) + "\n"
	}
	return out
}

func anyIfEmpty(v string) string {
	if v == "" {
		return "any"
	}
	return v
}

func personaLabel(p models.Persona) string {
	if p == "" {
		return ""
	}
	return p.Label()
}

func currentOf(items []models.Record, idx int) (models.Record, bool) {
	if len(items) == 0 || idx < 0 || idx >= len(items) {
		return models.Record{}, false
	}
	return items[idx], true
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
