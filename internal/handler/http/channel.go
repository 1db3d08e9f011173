// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/gorilla/websocket"
)

const (
	defaultPingInterval = 30 * time.Second
	defaultWriteTimeout = 10 * time.Second

	// maxFrameSize bounds a single inbound message; a full card bank fits.
	maxFrameSize = 8 << 20
)

// wsChannel is the relay.Channel of one embedded application connection.
type wsChannel struct {
	id           string
	conn         *websocket.Conn
	writeTimeout time.Duration

	mu sync.Mutex
}

func (c *wsChannel) ID() string { return c.id }

// Post writes msg as one JSON text frame. Writes are serialised.
func (c *wsChannel) Post(ctx context.Context, msg models.Outbound) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteJSON(msg)
}

func (c *wsChannel) ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeTimeout))
}

func (c *wsChannel) close(code int, reason string) {
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(c.writeTimeout))
	_ = c.conn.Close()
}

// channel upgrades the request to a WebSocket and attaches it to the session
// as the embedded application endpoint. It returns when the connection ends.
func (h *Handler) channel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session := sessionFrom(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the request
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	ch := &wsChannel{id: h.endpointIDs.Generate(), conn: conn, writeTimeout: h.writeTimeout}
	if err := session.Attach(ch); err != nil {
		log.Warn().Err(err).Msg("channel rejected")
		ch.close(websocket.CloseGoingAway, err.Error())
		return
	}
	defer session.Detach(ch)

	log = &logger.Logger{Logger: log.With().Str("endpoint", ch.ID()).Logger()}
	log.Info().Msg("channel opened")
	h.serveChannel(log.WithContext(context.WithoutCancel(r.Context())), session, ch, log)
	log.Info().Msg("channel closed")
}

// serveChannel reads frames until the connection fails or the session is
// closed. Frames are admitted to the session in arrival order; their
// handlers then run concurrently and outlive the connection so that a save
// that already started is not aborted.
func (h *Handler) serveChannel(ctx context.Context, session *relay.Session, ch *wsChannel, log *logger.Logger) {
	conn := ch.conn
	pongWait := 2 * h.pingInterval

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		session.KeepAlive()
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.keepAlive(session, ch, stop, log)
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				log.Warn().Err(err).Msg("channel read failed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		session.Deliver(ctx, relay.Event{Source: ch.ID(), Data: data})
	}
}

// keepAlive pings the embedded application and closes the connection when
// the session ends.
func (h *Handler) keepAlive(session *relay.Session, ch *wsChannel, stop <-chan struct{}, log *logger.Logger) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-session.Done():
			log.Info().Msg("session closed, closing channel")
			ch.close(websocket.CloseGoingAway, relay.ErrSessionClosed.Error())
			return
		case <-ticker.C:
			if err := ch.ping(); err != nil {
				log.Warn().Err(err).Msg("channel ping failed")
				_ = ch.conn.Close()
				return
			}
		}
	}
}

// checkAppOrigin accepts channel requests from the configured embedded
// application origins. With none configured only same-origin requests and
// clients that send no Origin header are accepted. "*" accepts any origin.
func (h *Handler) checkAppOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if len(h.cfg.AppOrigins) == 0 {
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}

	for _, allowed := range h.cfg.AppOrigins {
		allowed = strings.TrimRight(strings.TrimSpace(allowed), "/")
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
