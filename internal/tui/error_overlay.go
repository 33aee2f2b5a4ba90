// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(s styles) string {
	content := s.error.Render("Error") + "\n\n" + m.message + "\n\n" + s.help.Render("enter / esc close")
	return s.overlay.Render(content)
}
