package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
)

type sessionJanitorJob struct {
	sweeper SessionSweeper
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionJanitorJob creates a job that calls sweeper.Sweep on a ticker.
// The job is idle until Start is called.
func NewSessionJanitorJob(sweeper SessionSweeper, logger *logger.Logger) SessionJanitorJob {
	return &sessionJanitorJob{sweeper: sweeper, now: time.Now, logger: logger}
}

// Start implements SessionJanitorJob. It stops any previously running job,
// then launches a background goroutine that sweeps every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *sessionJanitorJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if n := j.sweeper.Sweep(j.now()); n > 0 {
					j.logger.Info().Int("closed", n).Msg("idle sessions swept")
				}
			}
		}
	}()
}

// Stop implements SessionJanitorJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *sessionJanitorJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
