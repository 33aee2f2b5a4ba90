// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the analysis gate when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRecordID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidRecordID = errors.New("invalid record id")

	// ErrConfirmationRequired is returned when a permanent deletion is
	// requested without confirm=true.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrNoMediaFile is returned when a media upload has no "file" part.
	ErrNoMediaFile = errors.New("no media file in upload")
)
