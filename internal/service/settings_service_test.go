// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/mock"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/models"
)

// ─────────────────────────────────────────────
// Theme
// ─────────────────────────────────────────────

func TestSettingsTheme(t *testing.T) {
	tests := []struct {
		name  string
		saved models.Settings
		err   error
		want  string
	}{
		{name: "saved theme wins", saved: models.Settings{Theme: "Forest Green"}, want: "Forest Green"},
		{name: "nothing saved", want: "Default Cyan"},
		{name: "unreadable settings", err: store.ErrCorruptSettings, want: "Default Cyan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockSettingsRepository(ctrl)
			repo.EXPECT().Load(gomock.Any()).Return(tt.saved, tt.err)

			got := NewSettingsService(repo, logger.Nop()).Theme(context.Background(), "Default Cyan")

			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// SaveTheme
// ─────────────────────────────────────────────

func TestSettingsSaveTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Settings{Theme: "Default Cyan"}, nil)
	repo.EXPECT().Save(gomock.Any(), models.Settings{Theme: "Royal Purple"}).Return(nil)

	require.NoError(t, NewSettingsService(repo, logger.Nop()).SaveTheme(context.Background(), "Royal Purple"))
}

func TestSettingsSaveTheme_OverwritesUnreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Settings{}, store.ErrCorruptSettings)
	repo.EXPECT().Save(gomock.Any(), models.Settings{Theme: "Royal Purple"}).Return(nil)

	require.NoError(t, NewSettingsService(repo, logger.Nop()).SaveTheme(context.Background(), "Royal Purple"))
}

func TestSettingsSaveTheme_WriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writeErr := errors.New("disk full")
	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(models.Settings{}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(writeErr)

	err := NewSettingsService(repo, logger.Nop()).SaveTheme(context.Background(), "Royal Purple")

	assert.ErrorIs(t, err, writeErr)
}
