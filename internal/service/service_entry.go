package service

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/internal/caesar"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/store"
	"github.com/MKhiriev/secure-e-diary/models"
)

type entryService struct {
	entryStorage store.EntryStorage
	shift        int

	logger *logger.Logger
}

// NewEntryService returns the core [EntryService]. It performs no input
// validation; wrap it with [NewEntryValidationService] for that.
func NewEntryService(entryStorage store.EntryStorage, logger *logger.Logger) EntryService {
	return &entryService{
		entryStorage: entryStorage,
		shift:        caesar.DefaultShift,
		logger:       logger,
	}
}

func (s *entryService) SaveEntry(ctx context.Context, request models.SaveRequest) (models.Entry, error) {
	entry := s.entryStorage.Put(ctx, request.EncryptedText)

	logger.FromContextOr(ctx, s.logger).Info().
		Str("id", entry.ID).
		Str("timestamp", entry.Timestamp()).
		Msg("new entry saved")

	return entry, nil
}

func (s *entryService) DecryptEntry(ctx context.Context, request models.DecryptRequest) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	entry, ok := s.entryStorage.Get(ctx, request.ID)
	if !ok {
		return "", ErrEntryNotFound
	}

	if !request.Key.Matches(s.shift) {
		log.Warn().Str("id", request.ID).Msg("wrong decryption key")
		return "", ErrIncorrectKey
	}

	decrypted := caesar.Decrypt(entry.Text, s.shift)
	log.Info().Str("id", request.ID).Msg("entry decrypted")

	return decrypted, nil
}

func (s *entryService) ListEntryIDs(ctx context.Context) []string {
	return s.entryStorage.ListIDs(ctx)
}

func (s *entryService) AllEntries(ctx context.Context) []models.Entry {
	return s.entryStorage.List(ctx)
}

func (s *entryService) CountEntries(ctx context.Context) int {
	return s.entryStorage.Count(ctx)
}
