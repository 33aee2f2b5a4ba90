// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-joycribe/models"
)

// Field name constants used to restrict record validation to a subset of
// fields.
const (
	FieldID        = "id"
	FieldStatus    = "status"
	FieldPersona   = "persona"
	FieldMediaType = "mediaType"
	FieldAnalysis  = "analysis"
)

// RecordValidator checks that a record is fit to be committed to history.
type RecordValidator struct{}

// NewRecordValidator constructs a RecordValidator and returns it as the
// Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate accepts models.Record or *models.Record. With no fields given it
// validates id, status, persona, media type and analysis presence.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldStatus, FieldPersona, FieldMediaType, FieldAnalysis}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID <= 0 {
				return ErrInvalidRecordID
			}
		case FieldStatus:
			if !r.Status.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, r.Status)
			}
		case FieldPersona:
			if !r.Persona.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidPersona, r.Persona)
			}
		case FieldMediaType:
			if !r.MediaType.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidMediaType, r.MediaType)
			}
		case FieldAnalysis:
			if !r.HasAnalysis() {
				return ErrMissingAnalysis
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
