// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the joycribe history and workspace over a local REST
// API. Route wiring, request tracing, access logging, compression and the
// analysis gate live here; every request is delegated to the service layer.
package http
