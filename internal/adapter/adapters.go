// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
)

// Transcriber names accepted in [config.Adapter.Transcriber].
const (
	TranscriberGemini = "gemini"
	TranscriberLocal  = "local"
)

// Adapters groups the collaborator clients handed to the service layer.
type Adapters struct {
	Transcriber Transcriber
	Analyzer    Analyzer
}

// NewAdapters builds the configured transcriber and the Gemini analyzer.
func NewAdapters(cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	gemini, err := NewGeminiClient(cfg, log)
	if err != nil {
		return nil, err
	}

	adapters := &Adapters{Transcriber: gemini, Analyzer: gemini}

	switch cfg.Transcriber {
	case TranscriberGemini, "":
	case TranscriberLocal:
		local, err := NewLocalTranscriber(cfg, log)
		if err != nil {
			return nil, err
		}
		adapters.Transcriber = local
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTranscriber, cfg.Transcriber)
	}

	log.Info().Str("transcriber", cfg.Transcriber).Str("model", cfg.GeminiModel).Msg("collaborator adapters created")

	return adapters, nil
}
