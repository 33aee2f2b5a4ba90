// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/workers"
)

var ErrNoUI = errors.New("client needs a user interface")

// App runs the terminal client together with its background jobs.
type App struct {
	ui     UI
	jobs   *workers.Workers
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns an App driving ui. Jobs run for as long as the UI does.
func NewApp(ui UI, jobs *workers.Workers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if jobs == nil {
		jobs = workers.NewWorkers()
	}

	return &App{ui: ui, jobs: jobs, logger: logger}, nil
}

// Run blocks until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.jobs.Start(ctx)
	defer a.jobs.Stop()

	a.logger.Info().Msg("starting terminal ui")
	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("terminal ui stopped with error")
		return err
	}

	a.logger.Info().Msg("terminal ui closed")
	return nil
}
