// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-joycribe/internal/service"
)

var ErrNoServices = errors.New("terminal ui needs orchestrator and history services")

// Errors raised by the client itself. Their text is shown as is.
var (
	ErrEmptyPath       = errors.New("media path is empty")
	ErrMediaUnreadable = errors.New("cannot read media file")
	ErrMediaTooLarge   = errors.New("media file is too large")
	ErrClipboard       = errors.New("cannot copy to clipboard")
)

var localErrors = []error{
	ErrEmptyPath,
	ErrMediaUnreadable,
	ErrMediaTooLarge,
	ErrClipboard,
}

// errorText is the message shown in the error overlay. Errors of the service
// taxonomy get their user message.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	for _, local := range localErrors {
		if errors.Is(err, local) {
			return err.Error()
		}
	}

	return service.UserMessage(err)
}
