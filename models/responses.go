package models

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Status is always "OK" while the process is serving.
	Status string `json:"status"`

	// Entries is the number of entries currently stored.
	Entries int `json:"entries"`
}

// SaveResponse is returned by a successful POST /save.
type SaveResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// EntriesResponse is returned by GET /entries.
type EntriesResponse struct {
	// IDs lists every stored entry id. It is never encoded as null.
	IDs []string `json:"ids"`
}

// DecryptResponse is returned by a successful POST /decrypt.
type DecryptResponse struct {
	Success   bool   `json:"success"`
	Decrypted string `json:"decrypted"`
}

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}
