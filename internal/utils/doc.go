// Package utils provides general-purpose helpers shared by the server, the
// healthcheck binary and the client adapter: JSON response writing, identifier
// generation and a preconfigured HTTP client.
package utils
