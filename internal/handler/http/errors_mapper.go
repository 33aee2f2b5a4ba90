// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/store"
)

// errorStatuses is checked in order: the first sentinel found in the chain
// wins, so wrapping sentinels come before the ones they may wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrStaleWorkspace, http.StatusConflict},
	{service.ErrWorkspaceBusy, http.StatusConflict},
	{service.ErrTranscriptionFailed, http.StatusBadGateway},
	{service.ErrAnalysisFailed, http.StatusBadGateway},

	{ErrInvalidRecordID, http.StatusBadRequest},
	{ErrConfirmationRequired, http.StatusBadRequest},
	{ErrNoMediaFile, http.StatusBadRequest},
	{export.ErrUnknownFormat, http.StatusBadRequest},
	{store.ErrDuplicateRecordID, http.StatusConflict},
	{service.ErrValidation, http.StatusBadRequest},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrPersistence, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the user-facing message of err.
func writeError(w http.ResponseWriter, err error) {
	msg := service.UserMessage(err)
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		msg = app.MsgConfirmationRequired
	case errors.Is(err, ErrInvalidRecordID), errors.Is(err, export.ErrUnknownFormat):
		msg = app.MsgInvalidDataProvided
	case errors.Is(err, ErrNoMediaFile):
		msg = app.MsgNoMediaSelected
	}

	http.Error(w, msg, statusFromError(err))
}
