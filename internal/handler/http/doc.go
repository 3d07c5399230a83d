// Package http implements the HTTP transport of the e-diary server.
//
// It wires the chi router, the JSON endpoints (/save, /entries, /decrypt,
// /health, /version) and the HTML dashboard served at "/". Request tracing,
// access logging, CORS and gzip compression are handled here as middleware
// before requests reach the service layer.
package http
