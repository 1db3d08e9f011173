package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
)

// withLogging writes one access log entry per request. For channel requests
// the entry is written when the WebSocket connection ends.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		entry := log.Info()
		if lw.hijacked {
			entry = entry.Bool("upgraded", true)
		}
		entry.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
