// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relay

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/adapter"
	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// RecordClientFactory builds the record client of a new session. tokens
// yields the session's current host token.
type RecordClientFactory func(tokens adapter.TokenSource, log *logger.Logger) service.RecordClient

// IDGenerator generates session identifiers.
type IDGenerator interface {
	Generate() string
}

// Registry owns the live sessions.
type Registry struct {
	newRecords RecordClientFactory
	ids        IDGenerator
	appID      string
	relayCfg   config.Relay
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session

	logger *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(cfg config.StructuredConfig, newRecords RecordClientFactory, ids IDGenerator, log *logger.Logger) *Registry {
	return &Registry{
		newRecords: newRecords,
		ids:        ids,
		appID:      cfg.Knack.AppID,
		relayCfg:   cfg.Relay,
		now:        time.Now,
		sessions:   make(map[string]*Session),
		logger:     log,
	}
}

// Create opens a session for profile authenticated by the host token.
func (r *Registry) Create(profile models.UserProfile, token string) (*Session, error) {
	profile.ID = strings.TrimSpace(profile.ID)
	if profile.ID == "" {
		return nil, ErrInvalidProfile
	}

	id := r.ids.Generate()
	log := r.logger.ForSession(id)
	tokens := NewTokenStore(token)
	tokens.now = r.now

	router := NewRouter(RouterConfig{
		AppID:                r.appID,
		Profile:              profile,
		SaveSettleDelay:      r.relayCfg.SaveSettleDelay,
		AddToBankSettleDelay: r.relayCfg.AddToBankSettleDelay,
	}, r.newRecords(tokens, log), tokens, log)
	router.now = r.now

	s := &Session{
		id:      id,
		profile: profile,
		tokens:  tokens,
		router:  router,
		done:    make(chan struct{}),
		now:     r.now,
		logger:  log,
	}
	s.touch()

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	log.Info().Str("user_id", profile.ID).Msg("session opened")
	return s, nil
}

// Get returns a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close closes and forgets a session.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep implements service.SessionSweeper. It closes sessions idle for
// longer than the configured TTL.
func (r *Registry) Sweep(now time.Time) int {
	deadline := now.Add(-r.relayCfg.SessionIdleTTL)

	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.IdleSince().Before(deadline) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// CloseAll closes every session. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
