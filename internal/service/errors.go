// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-joycribe/internal/validators"
)

// ErrValidation is the root of caller-correctable input errors.
var ErrValidation = validators.ErrValidation

var (
	// ErrEmptyTranscript is returned by RunAnalysis when the transcript is
	// blank. The analysis collaborator is not called.
	ErrEmptyTranscript = fmt.Errorf("%w: transcript is empty", ErrValidation)

	// ErrNoMedia is returned by SelectMedia without a media handle.
	ErrNoMedia = fmt.Errorf("%w: no media selected", ErrValidation)

	// ErrInvalidPersona is returned when a workspace edit names an unknown
	// persona.
	ErrInvalidPersona = fmt.Errorf("%w: unknown persona", ErrValidation)

	// ErrTranscriptionFailed wraps any transcription collaborator failure.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrAnalysisFailed wraps analysis collaborator failures, malformed
	// responses included.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrWorkspaceBusy is returned when an analysis is requested while
	// another operation of the workspace is in flight.
	ErrWorkspaceBusy = errors.New("workspace is busy")

	// ErrStaleWorkspace is returned when a collaborator result arrives after
	// the workspace moved on. The result is discarded.
	ErrStaleWorkspace = errors.New("workspace changed during operation")

	// ErrVersionIsNotSpecified is returned when the app info service is
	// created without a version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
