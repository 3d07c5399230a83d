// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoDiaryHandler is returned by NewServer when no HTTP handler for the
// diary routes was built.
var errNoDiaryHandler = errors.New("diary HTTP handler is not configured")
