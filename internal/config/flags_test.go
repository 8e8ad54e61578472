package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 5000},
			expected: ":5000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "ipv4", input: "127.0.0.1:5000", expectedHost: "127.0.0.1", expectedPort: 5000},
		{name: "all interfaces", input: ":5000", expectedHost: "", expectedPort: 5000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8080",
		"-d", "sqlite://test.db",
		"-f", "/tmp/uploads",
		"-config", "/etc/doc-manager.json",
		"-session-ttl", "2h",
		"-cookie-secure",
		"-max-upload-size", "1048576",
		"-request-timeout", "15s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite://test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "/etc/doc-manager.json", cfg.JSONFilePath)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, int64(1048576), cfg.App.MaxUploadSize)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
}
