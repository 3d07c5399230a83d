package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-e-diary/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersRoutes(t *testing.T) {
	h, _, _ := newMockedHandler(t)
	router := h.Init()

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, route := range []string{
		"GET /",
		"GET /health",
		"GET /version",
		"POST /save",
		"GET /entries",
		"POST /decrypt",
	} {
		assert.True(t, registered[route], "route %q must be registered", route)
	}
	assert.Len(t, registered, 6)
}

func TestRoutes_UnknownPathAndWrongMethod(t *testing.T) {
	router := newRouter(t, testServerConfig)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/save"},
		{http.MethodGet, "/decrypt"},
		{http.MethodPost, "/entries"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	router := newRouter(t, testServerConfig)

	for _, path := range []string{"/health", "/entries", "/", "/missing"} {
		rr := doRequest(t, router, http.MethodGet, path, "")
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader), path)
	}
}

// TestRoutes_DiaryScenario walks through a whole client session against the
// real in-memory stack.
func TestRoutes_DiaryScenario(t *testing.T) {
	router := newRouter(t, testServerConfig)

	// fresh process
	rr := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.HealthResponse{Status: "OK", Entries: 0}, decodeJSON[models.HealthResponse](t, rr))

	rr = doRequest(t, router, http.MethodGet, "/entries", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ids":[]}`, rr.Body.String())

	// save
	rr = doRequest(t, router, http.MethodPost, "/save", `{"encryptedText":"Khoor Zruog"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	saved := decodeJSON[models.SaveResponse](t, rr)
	assert.True(t, saved.Success)
	require.NotEmpty(t, saved.ID)

	rr = doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, 1, decodeJSON[models.HealthResponse](t, rr).Entries)

	rr = doRequest(t, router, http.MethodGet, "/entries", "")
	assert.Equal(t, []string{saved.ID}, decodeJSON[models.EntriesResponse](t, rr).IDs)

	// right key
	rr = doRequest(t, router, http.MethodPost, "/decrypt", `{"id":"`+saved.ID+`","key":3}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.DecryptResponse{Success: true, Decrypted: "Hello World"}, decodeJSON[models.DecryptResponse](t, rr))

	// wrong key
	rr = doRequest(t, router, http.MethodPost, "/decrypt", `{"id":"`+saved.ID+`","key":5}`)
	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Incorrect decryption key", decodeJSON[models.ErrorResponse](t, rr).Error)

	// unknown id
	rr = doRequest(t, router, http.MethodPost, "/decrypt", `{"id":"nope","key":3}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Entry not found", decodeJSON[models.ErrorResponse](t, rr).Error)

	// dashboard shows the ciphertext, never the plaintext
	rr = doRequest(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Khoor Zruog")
	assert.Contains(t, rr.Body.String(), saved.ID)
	assert.False(t, strings.Contains(rr.Body.String(), "Hello World"))
}

func TestRoutes_SaveKeepsOrderAndDuplicates(t *testing.T) {
	router := newRouter(t, testServerConfig)

	var ids []string
	for _, text := range []string{"one", "two", "one"} {
		rr := doRequest(t, router, http.MethodPost, "/save", `{"encryptedText":"`+text+`"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		ids = append(ids, decodeJSON[models.SaveResponse](t, rr).ID)
	}

	assert.NotEqual(t, ids[0], ids[2])

	rr := doRequest(t, router, http.MethodGet, "/entries", "")
	assert.Equal(t, ids, decodeJSON[models.EntriesResponse](t, rr).IDs)
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	h, entries, _ := newMockedHandler(t)
	entries.EXPECT().CountEntries(gomock.Any()).DoAndReturn(func(any) int { panic("storage exploded") })

	rr := doRequest(t, h.Init(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
