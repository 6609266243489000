// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.TopCustomersDefaultLimit)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoadConfig_File(t *testing.T) {
	configContent := `
server_port: "9090"
grpc_port: ""
log_level: debug
log_format: text
request_timeout: 5s
top_customers_default_limit: 3
seed_file: /tmp/seed.json
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sales-analytics.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Empty(t, cfg.GRPCPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.TopCustomersDefaultLimit)
	assert.Equal(t, "/tmp/seed.json", cfg.SeedFile)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sales-analytics.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("server_port = \"9090\"\n"), 0644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_FORMAT", "TEXT")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.ServerPort)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"LOG_FORMAT":                  "xml",
		"REQUEST_TIMEOUT":             "0s",
		"TOP_CUSTOMERS_DEFAULT_LIMIT": "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			cfg, err := LoadConfig("")
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
