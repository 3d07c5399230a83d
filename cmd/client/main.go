package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/MKhiriev/secure-e-diary/internal/client"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLoggerWithWriter("e-diary-client", os.Stderr)

	cfg, err := client.ConfigFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("error reading client config")
		return 1
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return 1
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, log, client.WithBrowser(tui.New(serverAdapter, log)))
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		app.PrintError(err)
		return 1
	}

	return 0
}
