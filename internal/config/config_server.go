// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerApp holds the application settings of the HTTP API.
type ServerApp struct {
	Version     string
	LogLevel    string
	GateSignKey string
	GateIssuer  string
}

// ServerConfig is the configuration view of cmd/server.
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Adapter Adapter
	Server  Server
	Workers Workers
}

// GetServerConfig builds and validates the HTTP API view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:     cfg.App.Version,
			LogLevel:    cfg.App.LogLevel,
			GateSignKey: cfg.App.GateSignKey,
			GateIssuer:  cfg.App.GateIssuer,
		},
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}
}
