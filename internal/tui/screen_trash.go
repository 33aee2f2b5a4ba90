// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-joycribe/models"
)

type trashModel struct {
	items   []models.Record
	idx     int
	loading bool
	status  string
}

func (m trashModel) current() (models.Record, bool) {
	return currentOf(m.items, m.idx)
}

func (m *trashModel) setItems(items []models.Record) {
	m.loading = false
	m.items = items
	m.idx = clampIndex(m.idx, len(items))
}

func (m trashModel) View(s styles) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("The recycle bin is empty\n")
	default:
		for i, r := range m.items {
			b.WriteString(recordRow(s, r, i == m.idx))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + s.accent.Render(m.status) + "\n")
	}

	return s.renderPage("JOYCRIBE · RECYCLE BIN", b.String(), "r: restore  d: delete forever  E: empty bin  esc: back")
}
