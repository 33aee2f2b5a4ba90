// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Media is a selected recording handed to the transcription collaborator.
// It is never persisted.
type Media struct {
	// Name is the original file name.
	Name string

	// MIMEType is the content type reported for the file, e.g. "audio/mpeg".
	MIMEType string

	// Data is the raw file content.
	Data []byte
}

// Type returns the media type derived from MIMEType.
func (m Media) Type() MediaType {
	return MediaTypeFromMIME(m.MIMEType)
}
