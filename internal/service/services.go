package service

import (
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// Services groups the process-wide services of the relay. Record clients are
// per session and are built by the session registry instead.
type Services struct {
	AppInfoService AppInfoService
	SessionJanitor SessionJanitorJob
}

func NewServices(buildInfo models.AppBuildInfo, sweeper SessionSweeper, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		SessionJanitor: NewSessionJanitorJob(sweeper, logger),
	}, nil
}
