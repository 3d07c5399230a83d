// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the e-diary server.
//
// The primary abstraction is [ServerAdapter], which hides the REST endpoints
// behind plain Go calls. Error responses are mapped by mapHTTPError onto the
// sentinel values in errors.go so that callers can use [errors.Is]
// (e.g. [ErrForbidden] for a wrong decryption key).
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-e-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the e-diary server.
type ServerAdapter interface {
	// Health fetches GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version fetches the plain-text version from GET /version.
	Version(ctx context.Context) (string, error)

	// SaveEntry stores already shifted text and returns the new entry id.
	// The text is sent as is; shifting is the caller's job.
	SaveEntry(ctx context.Context, encryptedText string) (string, error)

	// ListEntryIDs returns the ids of every stored entry in insertion order.
	ListEntryIDs(ctx context.Context) ([]string, error)

	// DecryptEntry asks the server to decrypt entry id with key. A wrong key
	// is reported as [ErrForbidden], an unknown id as [ErrNotFound].
	DecryptEntry(ctx context.Context, id string, key int) (string, error)
}
