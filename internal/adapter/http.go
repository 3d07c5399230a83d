package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/utils"
	"github.com/MKhiriev/secure-e-diary/models"
)

// Config holds the connection settings of the e-diary client.
type Config struct {
	// ServerURL is the base URL of the server. A bare "host:port" is
	// accepted and treated as http.
	ServerURL string `env:"SERVER_URL" envDefault:"http://127.0.0.1:5000"`

	// RequestTimeout bounds each request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerURL and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) SaveEntry(ctx context.Context, encryptedText string) (string, error) {
	var saved models.SaveResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SaveRequest{EncryptedText: encryptedText}).
		SetResult(&saved).
		Post("/save")
	if err != nil {
		return "", fmt.Errorf("save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if !saved.Success || saved.ID == "" {
		return "", fmt.Errorf("%w: save did not return an id", ErrUnexpectedResponse)
	}

	h.logger.Debug().Str("id", saved.ID).Msg("entry saved on server")
	return saved.ID, nil
}

func (h *httpServerAdapter) ListEntryIDs(ctx context.Context) ([]string, error) {
	var entries models.EntriesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&entries).
		Get("/entries")
	if err != nil {
		return nil, fmt.Errorf("entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries.IDs == nil {
		return []string{}, nil
	}
	return entries.IDs, nil
}

func (h *httpServerAdapter) DecryptEntry(ctx context.Context, id string, key int) (string, error) {
	var decrypted models.DecryptResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecryptRequest{ID: id, Key: models.NewDecryptionKey(float64(key))}).
		SetResult(&decrypted).
		Post("/decrypt")
	if err != nil {
		return "", fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("id", id).Msg("decrypt rejected by server")
		return "", err
	}
	if !decrypted.Success {
		return "", fmt.Errorf("%w: decrypt was not successful", ErrUnexpectedResponse)
	}

	return decrypted.Decrypted, nil
}
