package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5000}, expected: "localhost:5000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:5000", expectedAddr: NetAddress{Host: "localhost", Port: 5000}},
		{name: "valid IPv4", input: "0.0.0.0:8080", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "port only", input: ":5000", expectedAddr: NetAddress{Port: 5000}},
		{name: "missing colon", input: "localhost5000", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "127.0.0.1:8080",
				"-client-url", "https://diary.example.com",
				"-request-timeout", "10s",
				"-version", "3.0.0",
				"-log-level", "warn",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "https://diary.example.com", cfg.Server.ClientURL)
				assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "3.0.0", cfg.App.Version)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags leaves zero values",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-d", "./diary.db"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
