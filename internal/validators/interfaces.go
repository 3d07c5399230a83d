// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks diary requests before they reach the store.
//
// A save request must carry non-empty ciphertext. A decrypt request must
// carry an entry id and a key; whether the key actually unlocks the entry is
// left to the service. Validation can be narrowed to single fields with the
// Field* constants.
package validators

import "context"

// Validator checks a request value. When fields are given only those fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
