// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-joycribe/internal/adapter"
	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty transcript", ErrEmptyTranscript, app.MsgEmptyTranscript},
		{"transcription", fmt.Errorf("%w: %w", ErrTranscriptionFailed, adapter.ErrUpstreamUnavailable), app.MsgTranscriptionFailed},
		{
			name: "analysis message is verbatim",
			err:  fmt.Errorf("%w: %w", ErrAnalysisFailed, validators.ErrInvalidSentiment),
			want: validators.ErrInvalidSentiment.Error(),
		},
		{"analysis without message", ErrAnalysisFailed, app.MsgAnalysisFailed},
		{"busy", ErrWorkspaceBusy, app.MsgWorkspaceBusy},
		{"stale", fmt.Errorf("%w: late", ErrStaleWorkspace), app.MsgStaleWorkspace},
		{"no media", ErrNoMedia, app.MsgNoMediaSelected},
		{"persistence", fmt.Errorf("%w: disk full", store.ErrPersistence), app.MsgPersistenceFailed},
		{"not found", fmt.Errorf("%w: id 3", store.ErrRecordNotFound), app.MsgRecordNotFound},
		{"validation", fmt.Errorf("%w: tag too long", ErrValidation), "tag too long"},
		{"unknown", errors.New("boom"), app.MsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestExtractBody(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrAnalysisFailed, errors.New("quota exceeded"))

	assert.Equal(t, "quota exceeded", extractBody(err, ErrAnalysisFailed))
	assert.Empty(t, extractBody(ErrAnalysisFailed, ErrAnalysisFailed))
	assert.Empty(t, extractBody(errors.New("other: x"), ErrAnalysisFailed))
}
