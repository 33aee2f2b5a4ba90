// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// joycribe service layer, HTTP handlers and terminal client.
//
// Msg* constants are human-readable strings shown in the workspace status
// line, the error banner or HTTP response bodies. Keeping them in one place
// keeps wording consistent between the drivers.
package app

// Progress messages shown while a collaborator call is in flight.
const (
	MsgTranscribing = "Transcribing audio..."
	MsgAnalyzing    = "Analyzing transcript..."
)

const (
	// MsgEmptyTranscript is shown when analysis is requested without a
	// transcript.
	MsgEmptyTranscript = "Please provide a transcript to analyze."

	// MsgTranscriptionFailed is shown when the transcription collaborator
	// fails. Any transcript the user already typed is kept.
	MsgTranscriptionFailed = "Transcription failed. Please provide the transcript manually."

	// MsgAnalysisFailed is the fallback when the analysis collaborator fails
	// without a message of its own.
	MsgAnalysisFailed = "An unknown error occurred during analysis."

	// MsgPersistenceFailed is shown when the history could not be read or
	// written. The change that triggered it was not saved.
	MsgPersistenceFailed = "Failed to save history. Your last change was not stored."

	// MsgRecordNotFound is shown when the referenced record no longer exists.
	MsgRecordNotFound = "This record no longer exists."

	// MsgWorkspaceBusy is shown when an analysis is requested while another
	// operation is still running.
	MsgWorkspaceBusy = "Another operation is still in progress."

	// MsgStaleWorkspace is logged when a result arrives for a workspace the
	// user has already left.
	MsgStaleWorkspace = "The workspace changed before the operation finished."

	// MsgNoMediaSelected is returned when media upload carries no file.
	MsgNoMediaSelected = "No media file was provided."

	// MsgUnknownError is the fallback for errors outside the taxonomy.
	MsgUnknownError = "An unknown error occurred."
)

// HTTP response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path parameter is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgConfirmationRequired is returned when a permanent deletion is
	// requested without confirm=true.
	MsgConfirmationRequired = "permanent deletion requires confirm=true"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned by the analysis gate when the
	// bearer token is expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUploadTooLarge is returned when an uploaded media file exceeds the
	// configured limit.
	MsgUploadTooLarge = "uploaded file is too large"
)
