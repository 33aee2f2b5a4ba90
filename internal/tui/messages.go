// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

type historyLoadedMsg struct {
	items []models.Record
}

type trashLoadedMsg struct {
	items []models.Record
}

type dashboardLoadedMsg struct {
	stats view.Stats
}

// workspaceMsg carries the workspace after an orchestrator call. open asks
// the model to switch to the workspace screen.
type workspaceMsg struct {
	state workspace.State
	err   error
	open  bool
}

type analysisDoneMsg struct {
	record models.Record
	err    error
}

// recordsChangedMsg follows a trash, restore or delete. The visible list is
// reloaded whatever the outcome.
type recordsChangedMsg struct {
	err error
}

type notesSavedMsg struct {
	err error
}

type exportedMsg struct {
	text string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type themeSavedMsg struct {
	theme string
	err   error
}

type opFailedMsg struct {
	err error
}
