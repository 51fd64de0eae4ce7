package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete estimate-service configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Search SearchSettings `hcl:"search,block"`
}

// ServerSettings contains listener-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SearchSettings contains search defaults and limits applied to requests.
type SearchSettings struct {
	DefaultIterations int     `hcl:"default_iterations,optional"`
	MaxIterations     int     `hcl:"max_iterations,optional"`
	Exploration       float64 `hcl:"exploration,optional"`
	MaxChildren       int     `hcl:"max_children,optional"`
	Seed              int64   `hcl:"seed,optional"`
}

// DefaultConfig returns the default service configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8089,
			LogLevel: "info",
		},
		Search: SearchSettings{
			DefaultIterations: 1000,
			MaxIterations:     100000,
			MaxChildren:       1000,
		},
	}
}

// LoadConfig loads service configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8089
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Search.DefaultIterations == 0 {
		config.Search.DefaultIterations = 1000
	}
	if config.Search.MaxIterations == 0 {
		config.Search.MaxIterations = 100000
	}
	if config.Search.MaxChildren == 0 {
		config.Search.MaxChildren = 1000
	}

	return &config, nil
}

// Validate validates the service configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Search.DefaultIterations < 0 {
		return fmt.Errorf("default iterations must not be negative: %d", c.Search.DefaultIterations)
	}
	if c.Search.MaxIterations < c.Search.DefaultIterations {
		return fmt.Errorf("max iterations (%d) below default iterations (%d)",
			c.Search.MaxIterations, c.Search.DefaultIterations)
	}
	if c.Search.Exploration < 0 {
		return fmt.Errorf("exploration constant must not be negative: %g", c.Search.Exploration)
	}
	if c.Search.MaxChildren < 1 {
		return fmt.Errorf("max children must be at least 1: %d", c.Search.MaxChildren)
	}
	return nil
}

// ListenAddr returns the host:port the service binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
