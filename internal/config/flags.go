// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a                  server address in format [host]:[port]
//	-c/-config          json file path with configs
//	-backend            storage backend (file, bolt, sqlite, postgres, memory)
//	-f                  history file path
//	-bolt               bbolt database path
//	-bolt-key           key of the history blob
//	-d                  database DSN
//	-snapshot-key       SQL snapshot row key
//	-settings           user settings file path
//	-transcriber        transcriber (gemini, local)
//	-gemini-url         Gemini API root
//	-gemini-key         Gemini API key
//	-gemini-model       Gemini model
//	-strict-analysis    enforce persona blocks in analysis responses
//	-local-url          local transcription server root
//	-adapter-timeout    analysis request timeout (e.g. "2m")
//	-transcribe-timeout transcription request timeout (e.g. "5m")
//	-request-timeout    inbound HTTP request timeout (e.g. "30s")
//	-max-upload         upload limit in bytes
//	-refresh-interval   history reload interval, 0 disables
//	-gate-key           analysis gate HS256 key
//	-gate-issuer        analysis gate token issuer
//	-log-level          log level
//	-log-file           client log file
//	-theme              TUI theme
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		serverAddress NetAddress
	)

	fs := flag.NewFlagSet("joycribe", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Storage backend: file, bolt, sqlite, postgres, memory")
	fs.StringVar(&cfg.Storage.FilePath, "f", "", "History file path")
	fs.StringVar(&cfg.Storage.BoltPath, "bolt", "", "Bolt database path")
	fs.StringVar(&cfg.Storage.BoltKey, "bolt-key", "", "Bolt history key")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.SnapshotKey, "snapshot-key", "", "SQL snapshot key")
	fs.StringVar(&cfg.Storage.SettingsPath, "settings", "", "Settings file path")

	fs.StringVar(&cfg.Adapter.Transcriber, "transcriber", "", "Transcriber: gemini, local")
	fs.StringVar(&cfg.Adapter.GeminiBaseURL, "gemini-url", "", "Gemini API base URL")
	fs.StringVar(&cfg.Adapter.GeminiAPIKey, "gemini-key", "", "Gemini API key")
	fs.StringVar(&cfg.Adapter.GeminiModel, "gemini-model", "", "Gemini model")
	fs.BoolVar(&cfg.Adapter.StrictAnalysis, "strict-analysis", false, "Enforce persona blocks in analysis responses")
	fs.StringVar(&cfg.Adapter.LocalTranscriberURL, "local-url", "", "Local transcription server URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Analysis request timeout (e.g., 2m)")
	fs.DurationVar(&cfg.Adapter.TranscribeTimeout, "transcribe-timeout", 0, "Transcription request timeout (e.g., 5m)")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&cfg.Server.MaxUploadBytes, "max-upload", 0, "Max upload size in bytes")

	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "History reload interval (e.g., 10s)")

	fs.StringVar(&cfg.App.GateSignKey, "gate-key", "", "Analysis gate signing key")
	fs.StringVar(&cfg.App.GateIssuer, "gate-issuer", "", "Analysis gate token issuer")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.App.Theme, "theme", "", "TUI theme")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
