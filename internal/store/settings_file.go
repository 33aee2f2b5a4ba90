// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-joycribe/models"
)

// settingsFile keeps the user settings as a JSON object in its own file,
// separate from the history so that a history backend switch keeps them.
type settingsFile struct {
	path string
	mu   sync.Mutex
}

// NewSettingsFile returns settings storage over the file at path. The file is
// created on the first save.
func NewSettingsFile(path string) (SettingsRepository, error) {
	if path == "" {
		return nil, errors.New("settings path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create settings dir: %w", err)
		}
	}

	return &settingsFile{path: path}, nil
}

func (s *settingsFile) Load(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Settings{}, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: read settings file: %w", ErrPersistence, err)
	}

	var settings models.Settings
	if err = json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrCorruptSettings, err)
	}

	return settings, nil
}

func (s *settingsFile) Save(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err = writeFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: replace settings file: %w", ErrPersistence, err)
	}

	return nil
}
