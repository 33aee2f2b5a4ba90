// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the clients of the external collaborators: the
// speech transcriber and the transcript analyzer.
//
// [Transcriber] and [Analyzer] decouple the service layer from the
// protocol. The package ships a Gemini REST client implementing both and a
// client of the local desktop transcription server.
//
// Transport failures are mapped from HTTP status codes by mapHTTPError onto
// the sentinels in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-joycribe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transcriber turns a media file into transcript text.
type Transcriber interface {
	// Transcribe uploads media and returns the plain transcript. Returns an
	// error if the request fails or the collaborator returns no text.
	Transcribe(ctx context.Context, media models.Media) (string, error)
}

// Analyzer produces a structured analysis of a transcript.
type Analyzer interface {
	// Analyze runs the persona-specific analysis of transcript. When
	// customEntities is not blank the collaborator is also asked to extract
	// those entities. The response is validated before it is returned.
	Analyze(ctx context.Context, transcript string, persona models.Persona, customEntities string) (models.Analysis, error)
}
