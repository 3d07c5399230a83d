// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/models"
)

// memoryEntryStorage is the in-memory implementation of [EntryStorage].
//
// Entries live in a map keyed by id, while order keeps the insertion
// sequence so that listings are stable. Nothing is evicted and nothing
// survives a restart.
type memoryEntryStorage struct {
	mu      sync.RWMutex
	entries map[string]models.Entry
	order   []string

	idGenerator IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// MemoryOption customizes a memory entry storage.
type MemoryOption func(*memoryEntryStorage)

// WithClock replaces the clock used to timestamp new entries.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *memoryEntryStorage) {
		s.now = now
	}
}

// NewMemoryEntryStorage constructs an empty in-memory [EntryStorage] that
// draws ids from idGenerator.
func NewMemoryEntryStorage(idGenerator IDGenerator, logger *logger.Logger, opts ...MemoryOption) EntryStorage {
	s := &memoryEntryStorage{
		entries:     make(map[string]models.Entry),
		idGenerator: idGenerator,
		now:         time.Now,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *memoryEntryStorage) Put(ctx context.Context, text string) models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idGenerator.Generate()
	for _, taken := s.entries[id]; taken; _, taken = s.entries[id] {
		logger.FromContextOr(ctx, s.logger).Warn().Str("id", id).Msg("generated entry id collides with a stored one, regenerating")
		id = s.idGenerator.Generate()
	}

	entry := models.Entry{
		ID:        id,
		Text:      text,
		CreatedAt: s.now(),
	}

	s.entries[id] = entry
	s.order = append(s.order, id)

	return entry
}

func (s *memoryEntryStorage) Get(ctx context.Context, id string) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	return entry, ok
}

func (s *memoryEntryStorage) ListIDs(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)

	return ids
}

func (s *memoryEntryStorage) List(ctx context.Context) []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}

	return entries
}

func (s *memoryEntryStorage) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
