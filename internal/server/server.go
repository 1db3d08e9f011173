package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/handler"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/internal/workers"
)

type server struct {
	workers  runner
	sessions SessionCloser

	mu   sync.Mutex
	stop context.CancelFunc

	logger *logger.Logger
}

// NewServer builds the relay process: the HTTP server and, when janitor is
// not nil, the session janitor running every cfg.Relay.JanitorInterval.
func NewServer(handlers *handler.Handlers, janitor service.SessionJanitorJob, sessions SessionCloser, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	group := []workers.Worker{newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)}
	if janitor != nil {
		group = append(group, workers.NewJanitorWorker(janitor, cfg.Relay.JanitorInterval))
	}

	return &server{
		workers:  workers.New(group...),
		sessions: sessions,
		logger:   logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

func (s *server) Shutdown() {
	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// serve runs the workers until ctx is done or one of them fails, then
// closes the sessions that are still open.
func (s *server) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.stop = cancel
	s.mu.Unlock()

	err := s.workers.Run(ctx)
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}

	if s.sessions != nil {
		s.sessions.CloseAll()
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
