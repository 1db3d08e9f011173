package relay

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/utils"
)

// TokenStore holds the host session token of a session. The host page
// replaces it whenever the platform refreshes the user's session.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// NewTokenStore returns a store holding token, trimmed of surrounding spaces.
func NewTokenStore(token string) *TokenStore {
	return &TokenStore{token: strings.TrimSpace(token), now: time.Now}
}

// Token returns the stored token as is. It implements adapter.TokenSource.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()
}

// Current returns a token that can be handed to the embedded application,
// or [ErrNoSessionToken] / [ErrTokenExpired].
func (s *TokenStore) Current() (string, error) {
	token := s.Token()
	if token == "" {
		return "", ErrNoSessionToken
	}
	if utils.IsTokenExpired(token, s.now()) {
		return "", ErrTokenExpired
	}
	return token, nil
}
