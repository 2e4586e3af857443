// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults used when neither the config file, the environment nor a flag sets a value
const (
	DefaultMetricsPath = "data/metrics.json"
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Data
	MetricsPath string `json:"metrics_path,omitempty"` // Path to the metrics JSON document

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Site identity, used for page metadata
	SiteName string `json:"site_name,omitempty"`
	SiteRole string `json:"site_role,omitempty"`
	SiteURL  string `json:"site_url,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // logrus level name
	LogFormat string `json:"log_format,omitempty"` // "text" or "json"
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed output
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		MetricsPath: DefaultMetricsPath,
		Port:        DefaultPort,
		SiteName:    "Portfolio",
		SiteRole:    "Customer Success Manager",
		SiteURL:     "http://localhost:8080",
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// ApplyEnv overrides fields from environment variables when they are set.
// Recognized: METRICS_PATH, PORT, SITE_NAME, SITE_ROLE, SITE_URL, LOG_LEVEL, LOG_FORMAT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("METRICS_PATH"); v != "" {
		c.MetricsPath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be an integer, got %q", v)
		}
		c.Port = port
	}
	if v := os.Getenv("SITE_NAME"); v != "" {
		c.SiteName = v
	}
	if v := os.Getenv("SITE_ROLE"); v != "" {
		c.SiteRole = v
	}
	if v := os.Getenv("SITE_URL"); v != "" {
		c.SiteURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config error: 'log_format' must be \"text\" or \"json\"")
	}

	if c.MetricsPath != "" {
		if _, err := os.Stat(c.MetricsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: metrics file not found: %s", c.MetricsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MetricsPath == "" {
		result.MetricsPath = defaults.MetricsPath
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SiteName == "" {
		result.SiteName = defaults.SiteName
	}
	if result.SiteRole == "" {
		result.SiteRole = defaults.SiteRole
	}
	if result.SiteURL == "" {
		result.SiteURL = defaults.SiteURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
