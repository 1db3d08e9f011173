package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.cors().Handler)

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/sessions", func(r chi.Router) {
		r.With(h.hostToken).Post("/", h.createSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Use(h.withSession)
			r.Delete("/", h.deleteSession)
			r.With(h.hostToken).Put("/token", h.updateToken)
			r.Get("/channel", h.channel)
		})
	})

	return router
}

// cors allows the host page origins to call the session endpoints.
func (h *Handler) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         600,
	})
}
