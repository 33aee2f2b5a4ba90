// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/utils"
	"github.com/MKhiriev/go-joycribe/models"
)

type transcribeResponse struct {
	Transcript string `json:"transcript"`
}

// LocalTranscriber sends media to the transcription server bundled with the
// desktop build.
type LocalTranscriber struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

var _ Transcriber = (*LocalTranscriber)(nil)

// NewLocalTranscriber constructs a client of the local transcription server
// at cfg.LocalTranscriberURL.
func NewLocalTranscriber(cfg config.Adapter, log *logger.Logger) (*LocalTranscriber, error) {
	baseURL, err := normalizeBaseURL(cfg.LocalTranscriberURL)
	if err != nil {
		return nil, fmt.Errorf("invalid local transcriber url: %w", err)
	}

	return &LocalTranscriber{
		client: utils.NewHTTPClient(baseURL, cfg.TranscribeTimeout),
		logger: log,
	}, nil
}

// Transcribe implements [Transcriber]. The media is uploaded as the
// multipart field "file" to POST /transcribe.
func (l *LocalTranscriber) Transcribe(ctx context.Context, media models.Media) (string, error) {
	var out transcribeResponse

	resp, err := l.client.R().
		SetContext(ctx).
		SetMultipartField("file", media.Name, media.MIMEType, bytes.NewReader(media.Data)).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/transcribe")
	if err != nil {
		l.logger.Err(err).Str("func", "LocalTranscriber.Transcribe").Str("file", media.Name).Msg("transcription request failed")
		return "", fmt.Errorf("error during transcription: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		l.logger.Err(err).Str("func", "LocalTranscriber.Transcribe").Str("file", media.Name).Msg("transcription server error")
		return "", fmt.Errorf("error during transcription: %w", err)
	}

	transcript := strings.TrimSpace(out.Transcript)
	if transcript == "" {
		return "", fmt.Errorf("error during transcription: %w", ErrEmptyResponse)
	}

	return transcript, nil
}
