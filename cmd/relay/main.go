package main

import (
	"fmt"

	"github.com/MKhiriev/flashcard-bridge/internal/adapter"
	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/handler"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/server"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	fmt.Println("flashcard-bridge", buildInfo)

	log := logger.NewLogger("flashcard-bridge")

	// a missing .env file is fine: the environment may be set by the deployment
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("knack_base_url", cfg.Knack.BaseURL).
		Str("knack_object", cfg.Knack.ObjectKey).
		Msg("received configs")

	httpClient, err := adapter.NewHTTPClient(cfg.Knack)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating record api client")
	}

	newRecordClient := func(tokens adapter.TokenSource, sessionLog *logger.Logger) service.RecordClient {
		return service.NewRecordClient(
			adapter.NewKnackAdapter(httpClient, cfg.Knack, tokens, sessionLog),
			cfg.Fields,
			sessionLog,
		)
	}
	registry := relay.NewRegistry(*cfg, newRecordClient, utils.NewUUIDGenerator(), log)

	services, err := service.NewServices(buildInfo, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(registry, services.AppInfoService, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services.SessionJanitor, registry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// newBuildInfo lets an unversioned development build start: only the
// version is mandatory for the app info service.
func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = models.UnknownBuildValue
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
