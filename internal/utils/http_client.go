package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultClientTimeout bounds every request when no timeout is given.
const defaultClientTimeout = 5 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:5000", 2*time.Second)
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests are resolved against
// baseURL and limited by timeout. A non-positive timeout falls back to five
// seconds.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
