// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Messages for request bodies rejected before they reach the service layer.
const (
	// invalidJSONMessage is returned with 400 when the body is not valid JSON
	// or does not fit the expected request shape.
	invalidJSONMessage = "Invalid JSON was passed"

	// bodyTooLargeMessage is returned with 413 when the body exceeds maxBodyBytes.
	bodyTooLargeMessage = "Request entity too large"
)

// errTrailingData is logged when a second JSON value follows the request body.
var errTrailingData = errors.New("unexpected data after JSON value")
