// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when there are no
// services to serve, so no transport handler can be built. This is treated
// as a fatal misconfiguration and stops the application at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
