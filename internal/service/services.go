package service

import (
	"fmt"

	"github.com/MKhiriev/secure-e-diary/internal/config"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/store"
)

type Services struct {
	EntryService   EntryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	entryService := NewEntryValidationService().Wrap(
		NewEntryService(storages.EntryStorage, logger),
	)

	return &Services{
		EntryService:   entryService,
		AppInfoService: appInfoService,
	}, nil
}
