// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
)

type settingsService struct {
	settings store.SettingsRepository

	logger *logger.Logger
}

// NewSettingsService returns the preferences service over settings.
func NewSettingsService(settings store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		logger:   logger,
	}
}

func (s *settingsService) Theme(ctx context.Context, fallback string) string {
	saved, err := s.settings.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*settingsService.Theme").Msg("cannot read settings, using configured theme")
		return fallback
	}
	if saved.Theme == "" {
		return fallback
	}
	return saved.Theme
}

// SaveTheme keeps the other settings as they are. Unreadable settings are
// replaced.
func (s *settingsService) SaveTheme(ctx context.Context, name string) error {
	current, err := s.settings.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*settingsService.SaveTheme").Msg("cannot read settings, overwriting")
	}
	current.Theme = name

	if err = s.settings.Save(ctx, current); err != nil {
		s.logger.Err(err).Str("func", "*settingsService.SaveTheme").Str("theme", name).Msg("error saving theme")
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
