// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of the caller-correctable error class.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID  = fmt.Errorf("%w: record id must be positive", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPersona   = fmt.Errorf("%w: invalid persona", ErrValidation)
	ErrInvalidMediaType = fmt.Errorf("%w: invalid media type", ErrValidation)
	ErrMissingAnalysis  = fmt.Errorf("%w: analysis is required", ErrValidation)
)

// ErrMalformedAnalysis is returned when the analysis collaborator answers
// with a response that does not satisfy the result schema. It is not a
// validation error of user input.
var ErrMalformedAnalysis = errors.New("received malformed analysis data")

var (
	ErrSummaryNotString  = fmt.Errorf("%w: summary is not a string", ErrMalformedAnalysis)
	ErrInvalidSentiment  = fmt.Errorf("%w: sentiment is not one of Positive, Negative, Neutral, Mixed", ErrMalformedAnalysis)
	ErrInvalidRating     = fmt.Errorf("%w: overall rating must be within 1..10", ErrMalformedAnalysis)
	ErrInvalidEscalation = fmt.Errorf("%w: escalation must be Yes, No or Maybe", ErrMalformedAnalysis)
	ErrMissingInsights   = fmt.Errorf("%w: persona insights are missing", ErrMalformedAnalysis)
)
