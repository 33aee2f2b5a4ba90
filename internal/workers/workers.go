// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "context"

type Workers struct {
	jobs []Job
}

// NewWorkers groups jobs. Nil jobs are skipped.
func NewWorkers(jobs ...Job) *Workers {
	w := &Workers{}
	for _, job := range jobs {
		if job != nil {
			w.jobs = append(w.jobs, job)
		}
	}
	return w
}

// Start starts every job in order.
func (w *Workers) Start(ctx context.Context) {
	for _, job := range w.jobs {
		job.Start(ctx)
	}
}

// Stop stops the jobs in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.jobs) - 1; i >= 0; i-- {
		w.jobs[i].Stop()
	}
}
