// Package server runs the e-diary HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured request timeout.
package server
