package relay

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// Session is one embedding of the application for one signed-in user.
type Session struct {
	id      string
	profile models.UserProfile
	tokens  *TokenStore
	router  *Router

	lastSeen atomic.Int64
	closed   atomic.Bool
	done     chan struct{}
	now      func() time.Time

	logger *logger.Logger
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) Profile() models.UserProfile { return s.profile }
func (s *Session) Router() *Router             { return s.router }

// SetToken replaces the host session token.
func (s *Session) SetToken(token string) {
	s.tokens.Set(token)
	s.touch()
	s.logger.Debug().Msg("session token replaced")
}

// Attach connects an embedded application endpoint and starts a new
// embedding lifecycle.
func (s *Session) Attach(ch Channel) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	s.router.Attach(ch)
	s.touch()
	return nil
}

// Detach disconnects ch if it is still attached.
func (s *Session) Detach(ch Channel) {
	s.router.Detach(ch)
	s.touch()
}

// OnMessage hands ev to the session's router.
func (s *Session) OnMessage(ctx context.Context, ev Event) {
	s.touch()
	s.router.OnMessage(ctx, ev)
}

// Deliver hands ev to the session's router and returns once the message is
// admitted; see [Router.Deliver].
func (s *Session) Deliver(ctx context.Context, ev Event) {
	s.touch()
	s.router.Deliver(ctx, ev)
}

// KeepAlive marks the session as active, e.g. on a transport heartbeat.
func (s *Session) KeepAlive() {
	s.touch()
}

// Done is closed when the session is closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// IdleSince returns the time of the last activity on the session.
func (s *Session) IdleSince() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch() {
	s.lastSeen.Store(s.now().UnixNano())
}

// Close stops the session's router. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.router.Close()
	close(s.done)
	s.logger.Info().Msg("session closed")
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed.Load()
}
