// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-joycribe/models"
)

// Field names understood by AnalysisValidator.
const (
	FieldSummary          = "summary"
	FieldSentiment        = "sentiment"
	FieldSalesInsights    = "salesCoachingInsights"
	FieldSupportInsights  = "supportInsights"
	FieldRating           = "overallRating"
	FieldEscalationNeeded = "escalationNeeded"
)

// AnalysisValidator checks a raw collaborator response before it is decoded
// into models.Analysis.
//
// By default only summary and sentiment are enforced: a response is rejected
// when summary is not a JSON string or sentiment is not one of the four
// enumerated values. Persona blocks are checked only when their fields are
// requested explicitly.
type AnalysisValidator struct {
	persona models.Persona
}

// NewAnalysisValidator constructs an AnalysisValidator for responses to an
// analysis run with persona.
func NewAnalysisValidator(persona models.Persona) Validator {
	return &AnalysisValidator{persona: persona}
}

// rawAnalysis keeps the fields under validation undecoded so that their JSON
// type can be checked.
type rawAnalysis struct {
	Summary         json.RawMessage `json:"summary"`
	Sentiment       json.RawMessage `json:"sentiment"`
	SalesInsights   json.RawMessage `json:"salesCoachingInsights"`
	SupportInsights json.RawMessage `json:"supportInsights"`
}

// Validate accepts json.RawMessage or []byte holding the response object.
func (v *AnalysisValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var data []byte
	switch value := obj.(type) {
	case json.RawMessage:
		data = value
	case []byte:
		data = value
	default:
		return ErrUnsupportedType
	}

	var raw rawAnalysis
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedAnalysis, err)
	}

	if len(fields) == 0 {
		fields = []string{FieldSummary, FieldSentiment}
	}

	for _, f := range fields {
		switch f {
		case FieldSummary:
			if _, ok := jsonString(raw.Summary); !ok {
				return ErrSummaryNotString
			}
		case FieldSentiment:
			s, ok := jsonString(raw.Sentiment)
			if !ok || !models.Sentiment(s).IsValid() {
				return ErrInvalidSentiment
			}
		case FieldSalesInsights:
			if v.persona == models.PersonaSales && isAbsent(raw.SalesInsights) {
				return fmt.Errorf("%w: %s", ErrMissingInsights, FieldSalesInsights)
			}
		case FieldSupportInsights:
			if v.persona == models.PersonaSupport && isAbsent(raw.SupportInsights) {
				return fmt.Errorf("%w: %s", ErrMissingInsights, FieldSupportInsights)
			}
		case FieldRating:
			if isAbsent(raw.SalesInsights) {
				continue
			}
			var ins struct {
				OverallRating int `json:"overallRating"`
			}
			if json.Unmarshal(raw.SalesInsights, &ins) != nil || ins.OverallRating < 1 || ins.OverallRating > 10 {
				return ErrInvalidRating
			}
		case FieldEscalationNeeded:
			if isAbsent(raw.SupportInsights) {
				continue
			}
			var ins struct {
				EscalationNeeded string `json:"escalationNeeded"`
			}
			if json.Unmarshal(raw.SupportInsights, &ins) != nil {
				return ErrInvalidEscalation
			}
			switch ins.EscalationNeeded {
			case models.EscalationYes, models.EscalationNo, models.EscalationMaybe:
			default:
				return ErrInvalidEscalation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// StrictFields returns the fields checked in strict mode for persona: the
// default pair plus the persona block and its typed members. General has no
// block, so only the default pair is returned.
func StrictFields(persona models.Persona) []string {
	fields := []string{FieldSummary, FieldSentiment}
	switch persona {
	case models.PersonaSales:
		fields = append(fields, FieldSalesInsights, FieldRating)
	case models.PersonaSupport:
		fields = append(fields, FieldSupportInsights, FieldEscalationNeeded)
	}
	return fields
}

// jsonString decodes raw as a JSON string. null and other JSON types are
// rejected.
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
