package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HTTPAddress())
	assert.Equal(t, "*", cfg.Server.ClientURL)
}

// TestBuild_EmptyBuilderFailsValidation verifies that a zero config is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 8080}},
		&StructuredConfig{Server: Server{ClientURL: "https://diary.example.com"}, App: App{Version: "9.9.9"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, "https://diary.example.com", cfg.Server.ClientURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "6000", "CLIENT_URL": "http://localhost:3000"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 6000, b.configs[0].Server.Port)
	assert.Equal(t, "http://localhost:3000", b.configs[0].Server.ClientURL)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "five thousand"})

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-a", ":7070"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 7070, b.configs[0].Server.Port)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Server.Port = 5050
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 5050, b.configs[1].Server.Port)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestBuilder_FullChain verifies the source priority: defaults < env < flags < JSON.
func TestBuilder_FullChain(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"PORT":       "6000",
		"CLIENT_URL": "http://env.example.com",
		"CONFIG":     path,
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-client-url", "http://flag.example.com"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "http://flag.example.com", cfg.Server.ClientURL)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, path, cfg.JSONFilePath)
}
