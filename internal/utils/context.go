// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// typed context keys, content revisions, HTTP response writing, the resty
// client wrapper, gate token signing and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey stores the request trace id set by the HTTP middleware.
var TraceIDCtxKey = contextKey("traceID")

// GateSubjectCtxKey stores the subject of a verified analysis gate token.
var GateSubjectCtxKey = contextKey("gateSubject")

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// GetGateSubjectFromContext returns the gate token subject stored under
// [GateSubjectCtxKey].
func GetGateSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(GateSubjectCtxKey).(string)
	return subject, ok
}
