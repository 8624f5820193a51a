package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the dashboard configuration. Identity comes from here
// because the session provider is outside this client's scope.
type Config struct {
	API  APIConfig  `yaml:"api"`
	User UserConfig `yaml:"user"`
	Log  LogConfig  `yaml:"log"`
}

// APIConfig holds the backend origin and request timeout.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// UserConfig identifies the signed-in user for the submissions views.
type UserConfig struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// LogConfig holds the diagnostic log destination. The TUI owns the
// terminal, so logging goes to a file.
type LogConfig struct {
	File string `yaml:"file"`
}

// Timeout returns the configured request timeout. Zero means no
// timeout; a hung backend call is simply waited on.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 0,
		},
		Log: LogConfig{
			File: "./eventfinder.log",
		},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
