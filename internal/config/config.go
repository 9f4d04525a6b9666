// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"wifi-estimator/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Estimator contains estimator settings
	Estimator EstimatorConfig `json:"estimator"`

	// Portfolio contains portfolio settings
	Portfolio PortfolioConfig `json:"portfolio"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds request header/body reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`
}

// EstimatorConfig contains estimator-related settings
type EstimatorConfig struct {
	// CatalogPath is an optional HCL catalog file overriding the
	// compiled-in building-type and usage-profile multipliers
	CatalogPath string `json:"catalog_path,omitempty"`

	// RevealDelayMs is the delay before the deferred result reveal
	RevealDelayMs int `json:"reveal_delay_ms"`
}

// PortfolioConfig contains portfolio-related settings
type PortfolioConfig struct {
	// Path is an optional HCL portfolio definition file
	Path string `json:"path,omitempty"`

	// Filters is the set of known filter tokens; the sentinel "all"
	// is always included even when absent here
	Filters []string `json:"filters,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Estimator: EstimatorConfig{
			RevealDelayMs: 300,
		},
		Portfolio: PortfolioConfig{},
		Logging:   logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
