// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	storageBackends = []string{"file", "bolt", "sqlite", "postgres", "memory"}
	transcribers    = []string{"gemini", "local"}
)

// validate checks the merged [StructuredConfig] after defaults were applied.
// It covers the rules shared by every role; the role views add their own.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(storageBackends, cfg.Storage.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}
	if (cfg.Storage.Backend == "sqlite" || cfg.Storage.Backend == "postgres") && cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if !slices.Contains(transcribers, cfg.Adapter.Transcriber) {
		return fmt.Errorf("%w: unknown transcriber %q", ErrInvalidAdapterConfigs, cfg.Adapter.Transcriber)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.TranscribeTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.GateIssuer != "" && cfg.App.GateSignKey == "" {
		return fmt.Errorf("%w: gate issuer set without a signing key", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	// the analyzer is always Gemini
	if cfg.Adapter.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini api key is required", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Adapter.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini api key is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadBytes <= 0 || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
