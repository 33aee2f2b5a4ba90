// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of a joycribe binary, such as a
// periodic history reload, and stops them together on shutdown.
package workers

import "context"

// Job is a background task with an explicit lifecycle.
//
// Start must not block: it launches the job's goroutine and returns. The job
// runs until ctx is cancelled or Stop is called. Stop blocks until the job
// has exited and must be safe to call on a job that never started.
//
// Example implementation:
//
//	type tickJob struct{ cancel context.CancelFunc }
//
//	func (j *tickJob) Start(ctx context.Context) {
//	    ctx, j.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
type Job interface {
	Start(ctx context.Context)
	Stop()
}
