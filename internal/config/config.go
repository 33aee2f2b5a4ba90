// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is assembled
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Version is reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Theme is the initial TUI theme name.
	// Env: APP_THEME
	Theme string `env:"THEME"`

	// GateSignKey is the HS256 key verifying analysis gate tokens. An empty
	// key disables the gate.
	// Env: APP_GATE_SIGN_KEY
	GateSignKey string `env:"GATE_SIGN_KEY"`

	// GateIssuer is the required "iss" claim of gate tokens.
	// Env: APP_GATE_ISSUER
	GateIssuer string `env:"GATE_ISSUER"`
}

// Storage selects and configures the history backend.
type Storage struct {
	// Backend is one of "file", "bolt", "sqlite", "postgres" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// FilePath is the JSON history file used by the file backend.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// BoltPath is the bbolt database file used by the bolt backend.
	// Env: STORAGE_BOLT_PATH
	BoltPath string `env:"BOLT_PATH"`

	// BoltKey is the key the history blob is stored under.
	// Env: STORAGE_BOLT_KEY
	BoltKey string `env:"BOLT_KEY"`

	// DSN is the SQLite or PostgreSQL connection string.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SnapshotKey names the history row in the SQL backends.
	// Env: STORAGE_SNAPSHOT_KEY
	SnapshotKey string `env:"SNAPSHOT_KEY"`

	// SettingsPath is the JSON file the user settings are kept in. It is
	// used whatever the history backend.
	// Env: STORAGE_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH"`
}

// Server holds settings of the local HTTP API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. Transcription and
	// analysis requests are exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadBytes caps the size of an uploaded media file.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Adapter configures the transcription and analysis collaborators.
type Adapter struct {
	// Transcriber is "gemini" or "local".
	// Env: ADAPTER_TRANSCRIBER
	Transcriber string `env:"TRANSCRIBER"`

	// GeminiBaseURL is the generative language API root.
	// Env: ADAPTER_GEMINI_BASE_URL
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	// GeminiAPIKey is sent as x-goog-api-key.
	// Env: ADAPTER_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the model used for both transcription and analysis.
	// Env: ADAPTER_GEMINI_MODEL
	GeminiModel string `env:"GEMINI_MODEL"`

	// StrictAnalysis additionally rejects analysis responses whose persona
	// block is missing, whose overall rating is outside 1..10, or whose
	// escalation flag is not Yes, No or Maybe.
	// Env: ADAPTER_STRICT_ANALYSIS
	StrictAnalysis bool `env:"STRICT_ANALYSIS"`

	// LocalTranscriberURL is the root of the local transcription server.
	// Env: ADAPTER_LOCAL_TRANSCRIBER_URL
	LocalTranscriberURL string `env:"LOCAL_TRANSCRIBER_URL"`

	// RequestTimeout bounds an analysis request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TranscribeTimeout bounds a transcription request.
	// Env: ADAPTER_TRANSCRIBE_TIMEOUT
	TranscribeTimeout time.Duration `env:"TRANSCRIBE_TIMEOUT"`
}

// Workers configures background jobs.
type Workers struct {
	// RefreshInterval is how often the history is reloaded from the backend
	// to pick up other writers. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
