// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/handler"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/workers"
)

// spyJob считает вызовы Start и Stop.
type spyJob struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (j *spyJob) Start(context.Context) { j.started.Add(1) }
func (j *spyJob) Stop()                 { j.stopped.Add(1) }

func newTestHandlers(t *testing.T, address string) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.ServerConfig{Server: config.Server{HTTPAddress: address}}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, nil, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_Success(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, nil, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	job := &spyJob{}
	s, err := NewServer(
		newTestHandlers(t, "127.0.0.1:0"),
		config.Server{HTTPAddress: "127.0.0.1:0"},
		workers.NewWorkers(job),
		logger.Nop(),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, int32(1), job.started.Load())
	assert.Equal(t, int32(1), job.stopped.Load())
}

func TestServer_RunReturnsWhenListenFails(t *testing.T) {
	s, err := NewServer(
		newTestHandlers(t, "256.0.0.1:1"),
		config.Server{HTTPAddress: "256.0.0.1:1"},
		nil,
		logger.Nop(),
	)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		s.(*server).run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server kept running after listen failure")
	}
}
