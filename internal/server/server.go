package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/config"
	"github.com/MKhiriev/secure-e-diary/internal/handler"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
)

// defaultShutdownTimeout is used when no request timeout is configured.
const defaultShutdownTimeout = 5 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoDiaryHandler
	}

	shutdownTimeout := cfg.RequestTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
// down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutdown signal received")

	shutdownErr := s.httpServer.Shutdown(s.shutdownTimeout)
	if err := <-serveErr; err != nil {
		return err
	}
	if shutdownErr != nil {
		return shutdownErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
