// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("collaborator rejected the request")
	ErrUnauthorized        = errors.New("collaborator credentials rejected")
	ErrForbidden           = errors.New("collaborator access forbidden")
	ErrNotFound            = errors.New("collaborator endpoint or model not found")
	ErrPayloadTooLarge     = errors.New("media is too large for the collaborator")
	ErrRateLimited         = errors.New("collaborator quota exceeded")
	ErrUpstreamUnavailable = errors.New("collaborator unavailable")

	// ErrEmptyResponse is returned when the collaborator answers without any
	// text, e.g. because the candidate was blocked.
	ErrEmptyResponse = errors.New("collaborator returned no text")

	ErrUnknownTranscriber = errors.New("unknown transcriber")
)
