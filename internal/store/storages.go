// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
)

// Backend names accepted in [config.Storage.Backend].
const (
	BackendFile     = "file"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// History is the record store over the configured backend.
	History *RecordStore

	// Settings keeps the user preferences next to the history.
	Settings SettingsRepository
}

// NewStorages opens the configured backend, runs migrations where the
// backend needs them and loads the current history.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	backend, err := NewBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	history, err := NewRecordStore(ctx, backend, log)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("load history: %w", err)
	}

	settings, err := NewSettingsFile(cfg.SettingsPath)
	if err != nil {
		_ = history.Close()
		return nil, fmt.Errorf("open settings: %w", err)
	}

	return &Storages{History: history, Settings: settings}, nil
}

// NewBackend constructs the backend named by cfg.Backend.
func NewBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error) {
	switch cfg.Backend {
	case BackendFile:
		return NewFileBackend(cfg.FilePath)

	case BackendBolt:
		return NewBoltBackend(cfg.BoltPath, cfg.BoltKey)

	case BackendSQLite, BackendPostgres:
		connect := NewConnectSQLite
		if cfg.Backend == BackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Backend, err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLBackend(db, cfg.SnapshotKey), nil

	case BackendMemory:
		return NewMemoryBackend(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close closes every storage.
func (s *Storages) Close() error {
	return s.History.Close()
}
