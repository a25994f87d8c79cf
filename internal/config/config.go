// Package config loads the settings of the fitscube command from a YAML
// file. Command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the command configuration loaded from YAML
type Config struct {
	// Transpose parameters
	Transpose struct {
		// Order is the default output axis order; empty derives it from CTYPEn.
		Order []int `yaml:"order"`

		// HDU is the 0-based HDU to read
		HDU int `yaml:"hdu"`

		// Jobs bounds how many files are transposed at once
		Jobs int `yaml:"jobs"`
	} `yaml:"transpose"`

	// Shrink parameters
	Shrink struct {
		HDU       int  `yaml:"hdu"`
		MFactor   int  `yaml:"mfactor"`
		FixedSize bool `yaml:"fixedSize"`
	} `yaml:"shrink"`

	// Log parameters
	Log struct {
		// Debug is the diagnostic level, 0 to 3
		Debug int `yaml:"debug"`

		// Format is "text" or "json"
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Transpose.Jobs = runtime.NumCPU()
	cfg.Shrink.MFactor = 1
	cfg.Log.Format = "text"

	return cfg
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	switch {
	case c.Transpose.HDU < 0:
		return fmt.Errorf("transpose.hdu must be non-negative, got %d", c.Transpose.HDU)
	case c.Shrink.HDU < 0:
		return fmt.Errorf("shrink.hdu must be non-negative, got %d", c.Shrink.HDU)
	case c.Shrink.MFactor < 1:
		return fmt.Errorf("shrink.mfactor must be a positive integer, got %d", c.Shrink.MFactor)
	case c.Log.Debug < 0:
		return fmt.Errorf("log.debug must be non-negative, got %d", c.Log.Debug)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
