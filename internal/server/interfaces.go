// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the API process.
//
// RunServer blocks until a stop signal arrives and the server has shut
// down. Shutdown stops serving and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
