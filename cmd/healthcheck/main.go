package main

import (
	"context"
	"os"

	"github.com/MKhiriev/secure-e-diary/internal/healthcheck"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/utils"
)

func main() {
	os.Exit(check())
}

func check() int {
	log := logger.NewLogger("e-diary-healthcheck")

	cfg, err := healthcheck.ConfigFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("error reading healthcheck config")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client := utils.NewHTTPClient(cfg.BaseURL(), cfg.Timeout)
	if err = healthcheck.Probe(ctx, client); err != nil {
		log.Error().Err(err).Str("url", cfg.BaseURL()).Msg("healthcheck failed")
		return 1
	}

	return 0
}
