// Package config resolves the gateway's runtime configuration from an
// optional YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables understood by the gateway. Each overrides the
// corresponding file setting.
const (
	BindPortEnvVar    = "PORT"
	BackendURLEnvVar  = "BOSWELL_API_URL"
	OtelEnabledEnvVar = "OTEL_ENABLED"

	BindPortDefault = "8080"
)

// Config holds the gateway settings. BackendURL is the only mandatory value.
type Config struct {
	BindPort    string `yaml:"bind_port"`
	BackendURL  string `yaml:"boswell_api_url"`
	OtelEnabled bool   `yaml:"otel_enabled"`
}

// LoadFile reads a YAML config file from the given filesystem.
func LoadFile(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve layers environment variables over the file settings and applies
// defaults. file may be nil when no config file was given.
func Resolve(file *Config) (*Config, error) {
	cfg := Config{}
	if file != nil {
		cfg = *file
	}

	if port := os.Getenv(BindPortEnvVar); port != "" {
		cfg.BindPort = port
	}
	if cfg.BindPort == "" {
		cfg.BindPort = BindPortDefault
	}

	if u := os.Getenv(BackendURLEnvVar); u != "" {
		cfg.BackendURL = u
	}
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend base URL is not configured, set %s", BackendURLEnvVar)
	}

	if v := os.Getenv(OtelEnabledEnvVar); v != "" {
		switch strings.ToLower(v) {
		case "true", "1":
			cfg.OtelEnabled = true
		case "false", "0":
			cfg.OtelEnabled = false
		default:
			return nil, fmt.Errorf(
				"invalid value for %s environment variable: '%s', valid values are 'true' or 'false'",
				OtelEnabledEnvVar, v,
			)
		}
	}

	return &cfg, nil
}
