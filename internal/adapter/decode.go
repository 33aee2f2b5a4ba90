// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/validators"
	"github.com/MKhiriev/go-joycribe/models"
)

// decodeAnalysis validates and decodes the JSON text of an analysis
// response. Models occasionally wrap the JSON in a markdown fence; the fence
// is stripped before parsing. With strict set the persona block and its
// typed members are enforced as well.
func decodeAnalysis(ctx context.Context, persona models.Persona, text string, strict bool) (models.Analysis, error) {
	raw := json.RawMessage(stripCodeFence(text))

	var fields []string
	if strict {
		fields = validators.StrictFields(persona)
	}
	if err := validators.NewAnalysisValidator(persona).Validate(ctx, raw, fields...); err != nil {
		return models.Analysis{}, err
	}

	var analysis models.Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return models.Analysis{}, fmt.Errorf("%w: %w", validators.ErrMalformedAnalysis, err)
	}

	return analysis, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
