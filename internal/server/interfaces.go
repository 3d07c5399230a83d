package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until the process receives a termination
	// signal, then shuts down gracefully.
	RunServer() error

	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early with an error when the server cannot start.
	Run(ctx context.Context) error
}
