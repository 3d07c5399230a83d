// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and blocks until it
	// completes.
	Run(ctx context.Context, args []string) error
}

// Browser is the interactive mode started when no subcommand is given.
type Browser interface {
	Browse(ctx context.Context) error
}
