package http

import (
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/MKhiriev/flashcard-bridge/internal/validators"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/gorilla/websocket"
)

// Sessions is the session registry served by the handler.
type Sessions interface {
	Create(profile models.UserProfile, token string) (*relay.Session, error)
	Get(id string) (*relay.Session, error)
	Close(id string) error
	Len() int
}

type Handler struct {
	sessions Sessions
	appInfo  service.AppInfoService
	cfg      config.Server

	validator validators.Validator

	upgrader     websocket.Upgrader
	endpointIDs  relay.IDGenerator
	pingInterval time.Duration
	writeTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(sessions Sessions, appInfo service.AppInfoService, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		sessions:     sessions,
		appInfo:      appInfo,
		cfg:          cfg,
		validator:    validators.NewSessionValidator(),
		endpointIDs:  utils.NewUUIDGenerator(),
		pingInterval: defaultPingInterval,
		writeTimeout: defaultWriteTimeout,
		logger:       logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkAppOrigin,
	}
	return h
}
