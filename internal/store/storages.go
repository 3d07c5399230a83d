package store

import (
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/utils"
)

// Storages groups every storage the service layer depends on.
type Storages struct {
	EntryStorage EntryStorage
}

// NewStorages builds the process-lifetime storages. Entry ids are UUID v7.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		EntryStorage: NewMemoryEntryStorage(utils.NewUUIDGenerator(), logger),
	}
}
