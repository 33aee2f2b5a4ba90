// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

type settingsModel struct {
	themeIdx int
	version  string
}

func (m settingsModel) theme() theme {
	return themes[m.themeIdx]
}

func (m *settingsModel) nextTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(themes)
}

func (m *settingsModel) prevTheme() {
	m.themeIdx = (m.themeIdx - 1 + len(themes)) % len(themes)
}

func (m settingsModel) View(s styles) string {
	var b strings.Builder

	b.WriteString("Application: joycribe\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(m.version))
	b.WriteString("\n\n")
	b.WriteString(s.accent.Render("Theme"))
	b.WriteString("\n")
	for i, t := range themes {
		cursor := "  "
		name := t.name
		if i == m.themeIdx {
			cursor = "> "
			name = s.selected.Render(name)
		}
		b.WriteString(cursor + name + "\n")
	}

	return s.renderPage("JOYCRIBE · SETTINGS", strings.TrimRight(b.String(), "\n"), "t / ←→: change theme  esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
