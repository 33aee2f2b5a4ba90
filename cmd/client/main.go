// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/adapter"
	"github.com/MKhiriev/go-joycribe/internal/client"
	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/tui"
	"github.com/MKhiriev/go-joycribe/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("joycribe-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("joycribe-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.History.Close()

	adapters, err := adapter.NewAdapters(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create collaborator adapters")
	}

	services, err := service.NewServices(storages, adapters, appVersion(cfg.App.Version), cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, cfg.App.Theme, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(services.RefreshJob), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// appVersion prefers the version stamped at build time.
func appVersion(configured string) string {
	if buildVersion != "" && buildVersion != "N/A" {
		return buildVersion
	}
	return configured
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
