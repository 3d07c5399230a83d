// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout renders creation times the way the diary clients display
// them (month/day/year, 12-hour clock).
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Entry is a single diary message kept by the server.
//
// Entries are immutable: they are created by the save operation and never
// updated or deleted for the lifetime of the process.
type Entry struct {
	// ID is the server-generated opaque identifier and the only lookup key.
	ID string `json:"id"`

	// Text is the caller-submitted payload, stored verbatim. By convention it
	// is already shifted ("encrypted") on the client side.
	Text string `json:"encryptedText"`

	// CreatedAt is the moment the entry was saved.
	CreatedAt time.Time `json:"-"`
}

// Timestamp returns the human-readable creation time of the entry.
func (e Entry) Timestamp() string {
	return e.CreatedAt.Format(TimestampLayout)
}
