// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-joycribe/models"

// confirmAction is the destructive operation waiting for a yes.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteForever
	confirmEmptyBin
)

type confirmModel struct {
	action  confirmAction
	target  models.RecordID
	message string
}

func (m confirmModel) View(s styles) string {
	content := m.message + "\n" + s.help.Render("This cannot be undone.") + "\n\n"
	content += "y yes    n no"
	return s.overlay.Render(content)
}
