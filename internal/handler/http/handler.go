// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/utils"
)

// defaultMaxUploadBytes applies when the configuration carries no limit.
const defaultMaxUploadBytes int64 = 100 << 20

type Handler struct {
	services *service.Services

	gateSignKey    string
	gateIssuer     string
	requestTimeout time.Duration
	maxUploadBytes int64

	traceIDs *utils.TraceIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	maxUpload := cfg.Server.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		gateSignKey:    cfg.App.GateSignKey,
		gateIssuer:     cfg.App.GateIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadBytes: maxUpload,
		traceIDs:       utils.NewTraceIDGenerator(),
		logger:         logger,
	}
}
