// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientApp holds the application settings of the terminal client.
type ClientApp struct {
	Version  string
	LogLevel string
	LogFile  string
	Theme    string
}

// ClientConfig is the configuration view of cmd/client.
type ClientConfig struct {
	App     ClientApp
	Storage Storage
	Adapter Adapter
	Workers Workers
}

// GetClientConfig builds and validates the terminal client view of the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
			Theme:    cfg.App.Theme,
		},
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}
}
