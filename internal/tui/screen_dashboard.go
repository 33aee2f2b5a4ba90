// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/models"
)

// barWidth is the width of a full dashboard bar.
const barWidth = 30

type dashboardModel struct {
	stats   view.Stats
	loading bool
}

func (m dashboardModel) View(s styles) string {
	if m.loading {
		return s.renderPage("JOYCRIBE · DASHBOARD", "Loading...", "esc: back")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysed calls: %d\n", m.stats.Total)
	if m.stats.TopPersona != "" {
		fmt.Fprintf(&b, "Most used persona: %s\n", m.stats.TopPersona.Label())
	}

	b.WriteString("\n" + s.accent.Render("Sentiment") + "\n")
	for _, sentiment := range models.Sentiments {
		n := m.stats.BySentiment[sentiment]
		fmt.Fprintf(&b, "%-9s %4d %s\n", sentiment, n, bar(n, m.stats.Total))
	}

	b.WriteString("\n" + s.accent.Render("Personas") + "\n")
	if len(m.stats.ByPersona) == 0 {
		b.WriteString("-\n")
	}
	for _, pc := range m.stats.ByPersona {
		fmt.Fprintf(&b, "%-28s %4d\n", pc.Persona.Label(), pc.Count)
	}

	b.WriteString("\n" + s.accent.Render("Top keywords") + "\n")
	if len(m.stats.TopKeywords) == 0 {
		b.WriteString("-\n")
	}
	for _, kc := range m.stats.TopKeywords {
		fmt.Fprintf(&b, "%-28s %4d\n", kc.Keyword, kc.Count)
	}

	return s.renderPage("JOYCRIBE · DASHBOARD", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func bar(n, total int) string {
	if total <= 0 || n <= 0 {
		return ""
	}
	width := n * barWidth / total
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}
