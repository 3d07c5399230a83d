package main

import (
	"fmt"

	"github.com/MKhiriev/secure-e-diary/internal/config"
	"github.com/MKhiriev/secure-e-diary/internal/handler"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/server"
	"github.com/MKhiriev/secure-e-diary/internal/service"
	"github.com/MKhiriev/secure-e-diary/internal/store"
	"github.com/MKhiriev/secure-e-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("e-diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version injected at build time wins over the configured one
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Int("port", cfg.Server.Port).Msg("server running")
	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
