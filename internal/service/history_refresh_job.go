// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
)

type historyRefreshJob struct {
	history  store.HistoryRepository
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHistoryRefreshJob creates a job that calls history.Reload on a ticker,
// so that records written by another process show up in the views. A
// non-positive interval disables the job. The job is idle until Start is
// called.
func NewHistoryRefreshJob(history store.HistoryRepository, interval time.Duration, logger *logger.Logger) HistoryRefreshJob {
	return &historyRefreshJob{history: history, interval: interval, logger: logger}
}

// Start implements HistoryRefreshJob. It stops any previously running job,
// then launches a goroutine that reloads the history every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *historyRefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.history.Reload(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "historyRefreshJob.Start").Msg("error reloading history")
				}
			}
		}
	}()
}

// Stop implements HistoryRefreshJob. It cancels the goroutine and blocks
// until it has exited. Safe to call when the job is not running.
func (j *historyRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
