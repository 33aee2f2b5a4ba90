// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/store"
)

// UserMessage turns an error of the taxonomy into the single message shown
// to the user. A nil error yields an empty message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrEmptyTranscript):
		return app.MsgEmptyTranscript
	case errors.Is(err, ErrTranscriptionFailed):
		return app.MsgTranscriptionFailed
	case errors.Is(err, ErrAnalysisFailed):
		// the collaborator message is shown verbatim
		if msg := extractBody(err, ErrAnalysisFailed); msg != "" {
			return msg
		}
		return app.MsgAnalysisFailed
	case errors.Is(err, ErrWorkspaceBusy):
		return app.MsgWorkspaceBusy
	case errors.Is(err, ErrStaleWorkspace):
		return app.MsgStaleWorkspace
	case errors.Is(err, ErrNoMedia):
		return app.MsgNoMediaSelected
	case errors.Is(err, store.ErrPersistence):
		return app.MsgPersistenceFailed
	case errors.Is(err, store.ErrRecordNotFound):
		return app.MsgRecordNotFound
	case errors.Is(err, ErrValidation):
		if msg := extractBody(err, ErrValidation); msg != "" {
			return msg
		}
		return err.Error()
	}

	return app.MsgUnknownError
}

// extractBody strips the "<sentinel>: " prefix from a wrapped error message
// of the form fmt.Errorf("%w: %w", sentinel, cause).
func extractBody(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return ""
}
