// Package config loads textval settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrled/suns/textval/internal/logger"
	"github.com/mrled/suns/textval/internal/repository"
)

// Config holds all textval configuration.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Logging logger.Config `yaml:"logging"`
}

// HistoryConfig selects where check records are kept.
type HistoryConfig struct {
	File           string `yaml:"file"`
	DynamoTable    string `yaml:"dynamodb_table"`
	DynamoEndpoint string `yaml:"dynamodb_endpoint"`
}

// DefaultConfig returns a configuration with no history store and the
// logger's environment-derived defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: logger.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TEXTVAL_HISTORY_FILE"); v != "" {
		c.History.File = v
	}
	if v := os.Getenv("DYNAMODB_TABLE"); v != "" {
		c.History.DynamoTable = v
	}
	if v := os.Getenv("DYNAMODB_ENDPOINT"); v != "" {
		c.History.DynamoEndpoint = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks for settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid logging format %q: must be json or text", c.Logging.Format)
	}
	if c.History.DynamoEndpoint != "" && c.History.DynamoTable == "" {
		return fmt.Errorf("dynamodb_endpoint is set but dynamodb_table is empty")
	}
	return nil
}

// Repository returns the repository settings for the history store.
func (c *Config) Repository() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:       c.History.File,
		DynamoTable:    c.History.DynamoTable,
		DynamoEndpoint: c.History.DynamoEndpoint,
	}
}
