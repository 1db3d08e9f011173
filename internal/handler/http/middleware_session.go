// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/go-chi/chi/v5"
)

type sessionCtxKey struct{}

// withSession resolves the {sessionID} URL parameter to a live session. The
// session and its id are stored in the request context and the request
// logger gains a "session_id" field. Unknown sessions answer 404.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")

		session, err := h.sessions.Get(id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithSessionID(r.Context(), id)
		ctx = context.WithValue(ctx, sessionCtxKey{}, session)
		ctx = logger.FromRequest(r).ForSession(id).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session stored by withSession.
func sessionFrom(r *http.Request) *relay.Session {
	s, _ := r.Context().Value(sessionCtxKey{}).(*relay.Session)
	return s
}
