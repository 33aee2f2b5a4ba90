// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultedConfig(t *testing.T) *StructuredConfig {
	t.Helper()
	cfg := &StructuredConfig{Adapter: Adapter{GeminiAPIKey: "key"}}
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"unknown backend", func(c *StructuredConfig) { c.Storage.Backend = "redis" }, ErrInvalidStorageConfigs},
		{"sqlite without dsn", func(c *StructuredConfig) { c.Storage.Backend = "sqlite" }, ErrInvalidStorageConfigs},
		{"unknown transcriber", func(c *StructuredConfig) { c.Adapter.Transcriber = "whisper" }, ErrInvalidAdapterConfigs},
		{"negative refresh", func(c *StructuredConfig) { c.Workers.RefreshInterval = -1 }, ErrInvalidWorkerConfigs},
		{"issuer without key", func(c *StructuredConfig) { c.App.GateIssuer = "joycribe" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultedConfig(t)
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestClientConfig_View(t *testing.T) {
	cfg := defaultedConfig(t)
	cfg.App.Theme = "Crimson Night"

	clientCfg := newClientConfig(cfg)

	require.NoError(t, clientCfg.validate())
	assert.Equal(t, "Crimson Night", clientCfg.App.Theme)
	assert.Equal(t, cfg.Storage, clientCfg.Storage)

	clientCfg.Adapter.GeminiAPIKey = ""
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidAdapterConfigs)
}

func TestServerConfig_View(t *testing.T) {
	cfg := defaultedConfig(t)
	cfg.App.GateSignKey = "gk"

	serverCfg := newServerConfig(cfg)

	require.NoError(t, serverCfg.validate())
	assert.Equal(t, "gk", serverCfg.App.GateSignKey)
	assert.Equal(t, DefaultHTTPAddress, serverCfg.Server.HTTPAddress)

	serverCfg.Server.MaxUploadBytes = 0
	assert.ErrorIs(t, serverCfg.validate(), ErrInvalidServerConfigs)
}
