// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// RouterConfig holds the session attributes and timings a router needs.
type RouterConfig struct {
	// AppID is the host application id, forwarded in the identity message.
	AppID string
	// Profile is the signed-in user.
	Profile models.UserProfile
	// SaveSettleDelay is the pause before a queued save is replayed.
	SaveSettleDelay time.Duration
	// AddToBankSettleDelay is the pause between an add-to-bank result and
	// the data refresh that follows it.
	AddToBankSettleDelay time.Duration
}

// Router dispatches the messages of one session's embedded application.
type Router struct {
	cfg     RouterConfig
	records service.RecordClient
	tokens  *TokenStore
	saver   *SaveCoordinator
	now     func() time.Time

	mu        sync.RWMutex
	channel   Channel
	lifecycle *Lifecycle
	timers    map[*time.Timer]struct{}
	closed    bool

	logger *logger.Logger
}

// NewRouter returns a router with no channel attached. Messages are ignored
// until Attach is called.
func NewRouter(cfg RouterConfig, records service.RecordClient, tokens *TokenStore, log *logger.Logger) *Router {
	r := &Router{
		cfg:       cfg,
		records:   records,
		tokens:    tokens,
		now:       time.Now,
		lifecycle: &Lifecycle{},
		timers:    make(map[*time.Timer]struct{}),
		logger:    log,
	}
	r.saver = NewSaveCoordinator(records, cfg.SaveSettleDelay, r.notifySave, log)
	return r
}

// Attach makes ch the only endpoint the router accepts messages from and
// posts to. A new embedding lifecycle starts: every guard is reset.
func (r *Router) Attach(ch Channel) {
	r.mu.Lock()
	r.channel = ch
	r.lifecycle = &Lifecycle{}
	r.mu.Unlock()

	r.logger.Info().Str("endpoint", ch.ID()).Msg("embedded application attached")
}

// Detach removes ch if it is still the attached endpoint.
func (r *Router) Detach(ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.channel != nil && r.channel.ID() == ch.ID() {
		r.channel = nil
		r.logger.Info().Str("endpoint", ch.ID()).Msg("embedded application detached")
	}
}

// Lifecycle returns the state of the current embedding.
func (r *Router) Lifecycle() *Lifecycle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lifecycle
}

// OnMessage validates ev and runs the matching handler to completion.
// Events from an endpoint other than the attached one, frames with an
// unknown tag and malformed payloads are logged and dropped.
func (r *Router) OnMessage(ctx context.Context, ev Event) {
	if run := r.admit(ctx, ev); run != nil {
		run()
	}
}

// Deliver handles ev like OnMessage but returns as soon as the message has
// claimed its lifecycle guards and save slot; the rest of the handler runs
// in its own goroutine. A transport calling Deliver for each frame in
// arrival order gets the frames admitted in that order.
func (r *Router) Deliver(ctx context.Context, ev Event) {
	if run := r.admit(ctx, ev); run != nil {
		go run()
	}
}

// admit validates ev, runs the non-blocking part of its handler and returns
// the remainder, if any.
func (r *Router) admit(ctx context.Context, ev Event) func() {
	r.mu.RLock()
	ch, lc, closed := r.channel, r.lifecycle, r.closed
	r.mu.RUnlock()

	if closed {
		return nil
	}
	if ch == nil || ev.Source != ch.ID() {
		r.logger.Debug().Str("source", ev.Source).Msg("message from unknown source discarded")
		return nil
	}

	msg, err := models.DecodeInbound(ev.Data)
	if err != nil {
		if errors.Is(err, models.ErrUnknownMessageType) {
			r.logger.Warn().Err(err).Msg("unrecognised message ignored")
		} else {
			r.logger.Warn().Err(err).Msg("malformed message ignored")
		}
		return nil
	}

	r.logger.Debug().Str("type", string(msg.MessageType())).Msg("message received")
	return r.dispatch(ctx, ch, lc, msg)
}

func (r *Router) dispatch(ctx context.Context, ch Channel, lc *Lifecycle, msg models.Inbound) func() {
	h := &handler{router: r, channel: ch, lifecycle: lc}

	switch m := msg.(type) {
	case models.AppReady:
		return h.appReady(ctx)
	case models.SaveData:
		return h.saveData(ctx, m)
	case models.AddToBank:
		return h.addToBank(ctx, m)
	case models.TopicListsUpdated:
		return h.topicListsUpdated(ctx, m)
	case models.TriggerSave:
		return h.triggerSave(ctx, m)
	case models.ReloadAppData:
		return func() { h.reloadAppData(ctx) }
	case models.RequestUpdatedData:
		return func() { h.requestUpdatedData(ctx, m) }
	case models.AuthRefreshNeeded:
		return func() { h.refreshAuth(ctx) }
	case models.RequestRecordID:
		return func() { h.requestRecordID(ctx) }
	case models.PersistenceServicesReady:
		h.persistenceServicesReady(m)
	case models.AuthConfirmed:
		h.authConfirmed()
	case models.HealthCheck:
		return func() { h.post(ctx, models.NewHealthCheckAck()) }
	default:
		r.logger.Warn().Str("type", string(msg.MessageType())).Msg("message without handler ignored")
	}
	return nil
}

// notifySave forwards save lifecycle notifications to the attached channel.
func (r *Router) notifySave(status models.SaveStatus, recordID string) {
	r.mu.RLock()
	ch := r.channel
	r.mu.RUnlock()
	if ch == nil {
		return
	}

	r.postTo(context.Background(), ch, models.NewSaveStatus(status, recordID))
}

// postTo stamps msg and sends it to ch. Delivery errors are logged only: the
// embedded application may be gone already.
func (r *Router) postTo(ctx context.Context, ch Channel, msg models.Outbound) {
	h := msg.OutboundHeader()
	h.Timestamp = r.now().UTC()

	if err := ch.Post(ctx, msg); err != nil {
		r.logger.Warn().Err(err).Str("type", string(h.Type)).Msg("failed to post message")
	}
}

// after runs fn once d has elapsed unless the router is closed first.
func (r *Router) after(d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		r.mu.Lock()
		_, live := r.timers[t]
		delete(r.timers, t)
		r.mu.Unlock()
		if live {
			fn()
		}
	})
	r.timers[t] = struct{}{}
}

// Close stops pending timers and the save coordinator. Messages received
// afterwards are ignored.
func (r *Router) Close() {
	r.mu.Lock()
	r.closed = true
	r.channel = nil
	for t := range r.timers {
		t.Stop()
	}
	clear(r.timers)
	r.mu.Unlock()

	r.saver.Close()
}
