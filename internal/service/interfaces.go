package service

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntryService holds the diary business rules: storing ciphertext and
// unlocking it with the server key.
type EntryService interface {
	SaveEntry(ctx context.Context, request models.SaveRequest) (models.Entry, error)
	DecryptEntry(ctx context.Context, request models.DecryptRequest) (string, error)

	ListEntryIDs(ctx context.Context) []string
	AllEntries(ctx context.Context) []models.Entry
	CountEntries(ctx context.Context) int
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// logging or validating.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService // returns a decorated EntryService applying additional behavior
}
