package healthcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "", port: 5000, want: "127.0.0.1:5000"},
		{host: "0.0.0.0", port: 5000, want: "127.0.0.1:5000"},
		{host: "::", port: 8080, want: "127.0.0.1:8080"},
		{host: "localhost", port: 5000, want: "localhost:5000"},
		{host: "10.0.0.7", port: 9000, want: "10.0.0.7:9000"},
		{host: "::1", port: 5000, want: "[::1]:5000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.host, tt.port))
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"HOST", "PORT", "HEALTHCHECK_TIMEOUT"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := ConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:5000", cfg.BaseURL())
		assert.Equal(t, 2*time.Second, cfg.Timeout)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("HOST", "0.0.0.0")
		t.Setenv("PORT", "7000")
		t.Setenv("HEALTHCHECK_TIMEOUT", "500ms")

		cfg, err := ConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:7000", cfg.BaseURL())
		assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "five thousand")

		_, err := ConfigFromEnv()

		assert.Error(t, err)
	})
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		anyErr  bool
	}{
		{name: "healthy", status: http.StatusOK, body: `{"status":"OK","entries":3}`},
		{name: "bad status code", status: http.StatusServiceUnavailable, body: `{"status":"OK"}`, wantErr: ErrUnhealthy},
		{name: "bad reported status", status: http.StatusOK, body: `{"status":"DOWN","entries":0}`, wantErr: ErrUnhealthy},
		{name: "not json", status: http.StatusOK, body: `<html></html>`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, healthPath, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := Probe(context.Background(), utils.NewHTTPClient(srv.URL, time.Second))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestProbe_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := Probe(context.Background(), utils.NewHTTPClient(url, 200*time.Millisecond))

	assert.Error(t, err)
}
