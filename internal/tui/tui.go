// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client of joycribe.
//
// The client is a single bubbletea program over [service.Services]. It never
// touches the store or the collaborators directly: every state change goes
// through the orchestrator and every listing through the history service.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive terminal client.
type TUI struct {
	services *service.Services
	theme    string
	logger   *logger.Logger
}

// New returns a TUI over services starting with the named theme. An unknown
// theme name falls back to the first theme.
func New(services *service.Services, theme string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Orchestrator == nil || services.HistoryService == nil {
		return nil, ErrNoServices
	}

	return &TUI{services: services, theme: theme, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.theme, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}

	return nil
}
