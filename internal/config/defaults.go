// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields no source has set.
const (
	DefaultLogLevel            = "info"
	DefaultTheme               = "Default Cyan"
	DefaultStorageBackend      = "file"
	DefaultFilePath            = "history.json"
	DefaultBoltPath            = "history.bolt"
	DefaultBoltKey             = "joycribeHistory_v4"
	DefaultSnapshotKey         = "history"
	DefaultSettingsPath        = "settings.json"
	DefaultHTTPAddress         = "localhost:3001"
	DefaultServerTimeout       = 30 * time.Second
	DefaultMaxUploadBytes      = 100 << 20
	DefaultTranscriber         = "gemini"
	DefaultGeminiBaseURL       = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel         = "gemini-2.5-flash"
	DefaultLocalTranscriberURL = "http://127.0.0.1:5001"
	DefaultAdapterTimeout      = 2 * time.Minute
	DefaultTranscribeTimeout   = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.LogLevel, DefaultLogLevel)
	setDefault(&cfg.App.Theme, DefaultTheme)

	setDefault(&cfg.Storage.Backend, DefaultStorageBackend)
	setDefault(&cfg.Storage.FilePath, DefaultFilePath)
	setDefault(&cfg.Storage.BoltPath, DefaultBoltPath)
	setDefault(&cfg.Storage.BoltKey, DefaultBoltKey)
	setDefault(&cfg.Storage.SnapshotKey, DefaultSnapshotKey)
	setDefault(&cfg.Storage.SettingsPath, DefaultSettingsPath)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultServerTimeout)
	setDefault(&cfg.Server.MaxUploadBytes, DefaultMaxUploadBytes)

	setDefault(&cfg.Adapter.Transcriber, DefaultTranscriber)
	setDefault(&cfg.Adapter.GeminiBaseURL, DefaultGeminiBaseURL)
	setDefault(&cfg.Adapter.GeminiModel, DefaultGeminiModel)
	setDefault(&cfg.Adapter.LocalTranscriberURL, DefaultLocalTranscriberURL)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultAdapterTimeout)
	setDefault(&cfg.Adapter.TranscribeTimeout, DefaultTranscribeTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
