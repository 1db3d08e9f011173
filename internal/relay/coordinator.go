// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relay

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// SaveNotifier receives save lifecycle notifications.
type SaveNotifier func(status models.SaveStatus, recordID string)

// SaveCoordinator serialises the writes of one session: at most one save is
// in flight and at most one is queued behind it. Requests arriving while a
// save is running and another one is already queued are dropped with
// [ErrSaveDropped].
type SaveCoordinator struct {
	records service.RecordClient
	settle  time.Duration
	notify  SaveNotifier

	mu      sync.Mutex
	saving  bool
	pending *models.SaveRequest
	timer   *time.Timer
	closed  bool

	logger *logger.Logger
}

// NewSaveCoordinator returns an idle coordinator. A queued save is replayed
// settle after the running one finishes. notify may be nil.
func NewSaveCoordinator(records service.RecordClient, settle time.Duration, notify SaveNotifier, log *logger.Logger) *SaveCoordinator {
	if notify == nil {
		notify = func(models.SaveStatus, string) {}
	}
	return &SaveCoordinator{
		records: records,
		settle:  settle,
		notify:  notify,
		logger:  log,
	}
}

// Admit claims the write slot for req without blocking. Requests are
// admitted in call order, so callers that must keep the order of their
// requests admit them sequentially and may run the writes concurrently.
//
// When the slot is free Admit returns a write function that performs the
// save and must be called exactly once. Otherwise write is nil and req is
// either queued (SaveOutcome.Deferred) or refused with [ErrSaveDropped]
// (SaveOutcome.Dropped).
func (c *SaveCoordinator) Admit(req models.SaveRequest) (write func(context.Context) error, outcome models.SaveOutcome, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		return nil, models.SaveOutcome{}, ErrSessionClosed
	case !c.saving:
		c.saving = true
		return func(ctx context.Context) error { return c.run(ctx, req) }, models.SaveOutcome{}, nil
	case c.pending == nil:
		queued := req
		c.pending = &queued
		c.logger.Debug().Str("record_id", req.RecordID).Msg("save in progress, request queued")
		return nil, models.SaveOutcome{Deferred: true}, nil
	default:
		c.logger.Warn().Str("record_id", req.RecordID).Msg("save in progress and one already queued, request dropped")
		return nil, models.SaveOutcome{Dropped: true}, ErrSaveDropped
	}
}

// Save admits req and, when it got the slot, writes it. A deferred request
// reports SaveOutcome.Deferred and no error; its own result is only visible
// through the notifier.
func (c *SaveCoordinator) Save(ctx context.Context, req models.SaveRequest) (models.SaveOutcome, error) {
	write, outcome, err := c.Admit(req)
	if write == nil {
		return outcome, err
	}
	return outcome, write(ctx)
}

// run writes req while holding the slot. A queued request then inherits the
// slot and is written as it was received once the settle delay has passed.
// The slot stays held during the delay, so a request arriving meanwhile is
// queued behind the replay and writes follow admission order. Only a request
// refused by Admit is never written.
func (c *SaveCoordinator) run(ctx context.Context, req models.SaveRequest) error {
	err := c.write(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.pending
	if next == nil || c.closed {
		c.saving = false
		return err
	}
	c.pending = nil

	replayCtx := context.WithoutCancel(ctx)
	c.timer = time.AfterFunc(c.settle, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}
		if err := c.run(replayCtx, *next); err != nil {
			c.logger.Err(err).Str("record_id", next.RecordID).Msg("queued save failed")
		}
	})
	return err
}

func (c *SaveCoordinator) write(ctx context.Context, req models.SaveRequest) error {
	c.notify(models.SaveStarted, req.RecordID)

	if err := c.records.Update(ctx, req.RecordID, req.Patch()); err != nil {
		c.notify(models.SaveFailed, req.RecordID)
		return err
	}

	c.notify(models.SaveCompleted, req.RecordID)
	return nil
}

// Close drops a queued save and cancels a scheduled replay. Saves requested
// afterwards fail with [ErrSessionClosed].
func (c *SaveCoordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.pending = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
