package handler

import (
	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/handler/http"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(sessions http.Sessions, appInfo service.AppInfoService, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(sessions, appInfo, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
