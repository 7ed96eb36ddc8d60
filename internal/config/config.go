// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultBackendURL matches the backend's development server.
	DefaultBackendURL = "http://127.0.0.1:8000"
	// DefaultPort is the view server's default listen port.
	DefaultPort = 8080
	// DefaultTimeoutSeconds bounds each backend request.
	DefaultTimeoutSeconds = 30
)

// Environment variables consulted by FromEnv.
const (
	EnvBackendURL = "APPLYDAY_BACKEND_URL"
	EnvConfig     = "APPLYDAY_CONFIG"
	EnvTimeout    = "APPLYDAY_TIMEOUT_SECONDS"
	EnvPort       = "PORT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	BackendURL     string `json:"backend_url,omitempty"`     // ApplyDay backend root
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-request backend timeout
	Port           int    `json:"port,omitempty"`            // View server listen port

	FiltersFile string `json:"filters_file,omitempty"` // Saved filter preset applied by list/export
	ExportDir   string `json:"export_dir,omitempty"`   // Directory for xlsx exports

	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BackendURL:     DefaultBackendURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Port:           DefaultPort,
	}
}

// FromEnv returns Defaults overridden by any set environment variables.
// Malformed numeric values are ignored.
func FromEnv() Config {
	cfg := Defaults()
	if v := os.Getenv(EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv(EnvPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
// Empty fields are allowed since MergeWithDefaults fills them.
func (c *Config) Validate() error {
	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config error: 'backend_url' must be an http(s) URL, got %q", c.BackendURL)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.FiltersFile != "" {
		if _, err := os.Stat(c.FiltersFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: filters file not found: %s", c.FiltersFile)
		}
	}

	if c.ExportDir != "" {
		info, err := os.Stat(c.ExportDir)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: export_dir is not a directory: %s", c.ExportDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.FiltersFile == "" {
		result.FiltersFile = defaults.FiltersFile
	}
	if result.ExportDir == "" {
		result.ExportDir = defaults.ExportDir
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so true wins
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Timeout returns the backend timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
