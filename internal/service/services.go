// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-joycribe/internal/adapter"
	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
)

// Services groups the service layer handed to the drivers.
type Services struct {
	Orchestrator    Orchestrator
	HistoryService  HistoryService
	AppInfoService  AppInfoService
	SettingsService SettingsService
	RefreshJob      HistoryRefreshJob

	// Session is the single workspace driven by Orchestrator.
	Session *workspace.Session
}

// NewServices wires the services over storages and adapters.
func NewServices(storages *store.Storages, adapters *adapter.Adapters, version string, cfg config.Workers, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	session := workspace.NewSession()

	return &Services{
		Orchestrator:    NewOrchestrator(storages.History, adapters.Transcriber, adapters.Analyzer, session, logger),
		HistoryService:  NewHistoryService(storages.History, logger),
		AppInfoService:  appInfo,
		SettingsService: NewSettingsService(storages.Settings, logger),
		RefreshJob:      NewHistoryRefreshJob(storages.History, cfg.RefreshInterval, logger),
		Session:         session,
	}, nil
}
