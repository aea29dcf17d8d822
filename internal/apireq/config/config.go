// Package config holds server-level configuration for the mcp-api-request
// tool. The config file is TOML and entirely optional: stdio serving works
// with built-in defaults, the HTTP transport reads hostname and port from it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigFormatVersion is the current version of the configuration file format.
const ConfigFormatVersion = "0.1.0"

// ConfigParam holds all configuration parameters for the server.
type ConfigParam struct {
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// HTTP transport configuration
	ServerHostName string `toml:"server_hostname"` // Hostname the HTTP transport binds to
	ServerPort     string `toml:"server_port"`     // Port for the HTTP transport
	HandleCORS     bool   `toml:"handle_cors"`     // Whether to handle CORS on the HTTP transport

	// Request defaults
	DefaultProjectRoot    string  `toml:"default_project_root"`    // Fallback project root for config discovery
	DefaultTimeoutSeconds float64 `toml:"default_timeout_seconds"` // Request timeout when the caller passes none

	LogLevel string `toml:"log_level"` // zerolog level name, default info
}

var cfg *ConfigParam

// Config returns the current configuration, falling back to defaults when no
// file was loaded.
func Config() *ConfigParam {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns the built-in configuration used when no config file
// is given.
func DefaultConfig() *ConfigParam {
	c := &ConfigParam{FormatVersion: ConfigFormatVersion}
	applyDefaults(c)
	return c
}

// LoadConfig loads configuration from a TOML file and validates it.
func LoadConfig(filename string) error {
	if filename == "" {
		return fmt.Errorf("config filename is required")
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	c := &ConfigParam{}
	if _, err := toml.Decode(string(content), c); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	if err := ValidateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	cfg = c
	return nil
}

// ValidateConfig checks required values and fills in defaults.
func ValidateConfig(c *ConfigParam) error {
	if c.FormatVersion != ConfigFormatVersion {
		return fmt.Errorf("unsupported config file format version: %s", c.FormatVersion)
	}
	if c.DefaultTimeoutSeconds < 0 {
		return fmt.Errorf("default_timeout_seconds must not be negative")
	}
	if c.DefaultProjectRoot != "" {
		if info, err := os.Stat(c.DefaultProjectRoot); err != nil || !info.IsDir() {
			return fmt.Errorf("default_project_root is not a directory: %s", c.DefaultProjectRoot)
		}
	}
	applyDefaults(c)
	return nil
}

func applyDefaults(c *ConfigParam) {
	if c.ServerHostName == "" {
		// Bind loopback only. This tool carries project credentials and is
		// meant for the local developer machine.
		c.ServerHostName = "127.0.0.1"
	}
	if c.ServerPort == "" {
		c.ServerPort = "8737"
	}
	if c.DefaultTimeoutSeconds == 0 {
		c.DefaultTimeoutSeconds = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadDotEnv loads a .env file from the current working directory so
// per-project settings like MCP_API_REQUEST_PROJECT_ROOT apply without
// touching the shell environment. A missing .env is not an error.
func LoadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(cwd, ".env"))
}

// HTTPAddr returns the bind address for the HTTP transport.
func (c *ConfigParam) HTTPAddr() string {
	return c.ServerHostName + ":" + c.ServerPort
}
