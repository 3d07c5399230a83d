package handler

import (
	"github.com/MKhiriev/secure-e-diary/internal/config"
	"github.com/MKhiriev/secure-e-diary/internal/handler/http"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
