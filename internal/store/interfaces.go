package store

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntryStorage keeps diary entries for the lifetime of the process.
//
// All operations are total: a missing entry is reported by the boolean
// result of Get, never by an error.
type EntryStorage interface {
	// Put stores text under a freshly generated id and returns the new entry.
	Put(ctx context.Context, text string) models.Entry

	// Get returns the entry stored under id and whether it exists.
	Get(ctx context.Context, id string) (models.Entry, bool)

	// ListIDs returns the ids of all stored entries in insertion order.
	ListIDs(ctx context.Context) []string

	// List returns all stored entries in insertion order.
	List(ctx context.Context) []models.Entry

	// Count returns the number of stored entries.
	Count(ctx context.Context) int
}

// IDGenerator produces unique entry identifiers.
type IDGenerator interface {
	Generate() string
}
