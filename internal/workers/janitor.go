// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/service"
)

type janitorWorker struct {
	job      service.SessionJanitorJob
	interval time.Duration
}

// NewJanitorWorker runs job every interval for as long as the group runs.
func NewJanitorWorker(job service.SessionJanitorJob, interval time.Duration) Worker {
	return &janitorWorker{job: job, interval: interval}
}

func (w *janitorWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}
