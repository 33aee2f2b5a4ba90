// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownPersona is returned when a persona value or label is not recognised.
var ErrUnknownPersona = errors.New("unknown persona")
