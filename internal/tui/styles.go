// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// theme is a named accent colour. The names and colours follow the desktop
// build so the configured theme means the same in both clients.
type theme struct {
	name   string
	accent lipgloss.Color
}

var themes = []theme{
	{name: "Default Cyan", accent: lipgloss.Color("#06b6d4")},
	{name: "Crimson Night", accent: lipgloss.Color("#dc2626")},
	{name: "Forest Green", accent: lipgloss.Color("#16a34a")},
	{name: "Royal Purple", accent: lipgloss.Color("#9333ea")},
}

// themeIndex returns the position of the named theme, 0 when unknown.
func themeIndex(name string) int {
	for i, t := range themes {
		if t.name == name {
			return i
		}
	}
	return 0
}

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	accent   lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
	error    lipgloss.Style
	overlay  lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.accent),
		accent:   lipgloss.NewStyle().Foreground(t.accent),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.accent),
		help:     lipgloss.NewStyle().Faint(true),
		error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.accent).Padding(1, 2),
	}
}
