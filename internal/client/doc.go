// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the e-diary server.
//
// Each subcommand maps onto one server endpoint. Entries are shifted on the
// client before they are sent, so the server only ever stores shifted text.
// Running without a subcommand opens the interactive browser from package
// tui.
package client
