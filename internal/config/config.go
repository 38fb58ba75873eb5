// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`
	// DatabaseURL is the PostgreSQL connection URL for analysis history.
	// Empty disables persistence.
	DatabaseURL string `json:"database_url,omitempty"`
	// DensityTopN is how many keyword-density entries reports include.
	DensityTopN int `json:"density_top_n,omitempty"`
	// UseBrowser enables the headless-browser fallback when fetching job
	// postings from URLs.
	UseBrowser bool `json:"use_browser,omitempty"`
}

// Defaults applied by Load when neither file nor environment set a value.
const (
	DefaultPort        = 8080
	DefaultDensityTopN = 15
)

// Load builds the configuration from an optional JSON file plus
// environment variable overrides (PORT, DATABASE_URL).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DensityTopN == 0 {
		cfg.DensityTopN = DefaultDensityTopN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DensityTopN < 0 {
		return fmt.Errorf("config error: 'density_top_n' must be non-negative")
	}
	return nil
}
