package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "localhost", config.Server.Address)
	assert.Equal(t, 8089, config.Server.Port)
	assert.Equal(t, "info", config.Server.LogLevel)
	assert.Equal(t, 1000, config.Search.DefaultIterations)
	assert.Equal(t, 100000, config.Search.MaxIterations)
	assert.Equal(t, 1000, config.Search.MaxChildren)
	require.NoError(t, config.Validate())
	assert.Equal(t, "localhost:8089", config.ListenAddr())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.hcl")
	content := `
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

search {
  default_iterations = 2000
  max_iterations     = 50000
  exploration        = 1.5
  seed               = 42
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", config.Server.Address)
	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, "debug", config.Server.LogLevel)
	assert.Equal(t, 2000, config.Search.DefaultIterations)
	assert.Equal(t, 50000, config.Search.MaxIterations)
	assert.Equal(t, 1.5, config.Search.Exploration)
	assert.Equal(t, int64(42), config.Search.Seed)
	// Unset fields pick up defaults
	assert.Equal(t, 1000, config.Search.MaxChildren)
	assert.Equal(t, "0.0.0.0:9000", config.ListenAddr())
}

func TestLoadConfigInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"negative default iterations", func(c *Config) { c.Search.DefaultIterations = -1 }},
		{"max below default", func(c *Config) { c.Search.MaxIterations = 10; c.Search.DefaultIterations = 100 }},
		{"negative exploration", func(c *Config) { c.Search.Exploration = -0.5 }},
		{"zero max children", func(c *Config) { c.Search.MaxChildren = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}
