// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version     string `json:"version"`
		LogLevel    string `json:"log_level"`
		LogFile     string `json:"log_file"`
		Theme       string `json:"theme"`
		GateSignKey string `json:"gate_sign_key"`
		GateIssuer  string `json:"gate_issuer"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend      string `json:"backend"`
		FilePath     string `json:"file_path"`
		BoltPath     string `json:"bolt_path"`
		BoltKey      string `json:"bolt_key"`
		DSN          string `json:"dsn"`
		SnapshotKey  string `json:"snapshot_key"`
		SettingsPath string `json:"settings_path"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Adapter struct {
		Transcriber         string   `json:"transcriber"`
		GeminiBaseURL       string   `json:"gemini_base_url"`
		GeminiAPIKey        string   `json:"gemini_api_key"`
		GeminiModel         string   `json:"gemini_model"`
		StrictAnalysis      bool     `json:"strict_analysis"`
		LocalTranscriberURL string   `json:"local_transcriber_url"`
		RequestTimeout      Duration `json:"request_timeout"`
		TranscribeTimeout   Duration `json:"transcribe_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App:     App(jsonCfg.App),
		Storage: Storage(jsonCfg.Storage),
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadBytes: jsonCfg.Server.MaxUploadBytes,
		},
		Adapter: Adapter{
			Transcriber:         jsonCfg.Adapter.Transcriber,
			GeminiBaseURL:       jsonCfg.Adapter.GeminiBaseURL,
			GeminiAPIKey:        jsonCfg.Adapter.GeminiAPIKey,
			GeminiModel:         jsonCfg.Adapter.GeminiModel,
			StrictAnalysis:      jsonCfg.Adapter.StrictAnalysis,
			LocalTranscriberURL: jsonCfg.Adapter.LocalTranscriberURL,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			TranscribeTimeout:   time.Duration(jsonCfg.Adapter.TranscribeTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
