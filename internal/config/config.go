// Package config provides defaults-first configuration loading for the
// converter, with an optional YAML file layer and environment-variable
// overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the converter configuration
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
}

// ConvertConfig holds conversion settings
type ConvertConfig struct {
	// Format is the formatter name, "simple" or "html"
	Format string `yaml:"format"`
	// OutputDir is the default batch-mode output directory
	OutputDir string `yaml:"output_dir"`
	// Workers is the batch-mode worker count; 0 lets the converter decide
	Workers int `yaml:"workers"`
	// Overwrite controls whether batch mode rewrites existing .md files
	Overwrite bool `yaml:"overwrite"`
}

// Load builds configuration from defaults and environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer, then
// overrides with environment variables. Returns an error if the file does
// not exist or cannot be parsed.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	return cfg, nil
}

// applyDefaults sets default values for all configuration fields
func (c *Config) applyDefaults() {
	c.Convert.Format = "simple"
	c.Convert.OutputDir = "."
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("EML2MD_FORMAT"); v != "" {
		c.Convert.Format = v
	}
	if v := os.Getenv("EML2MD_OUTPUT_DIR"); v != "" {
		c.Convert.OutputDir = v
	}
	if v := os.Getenv("EML2MD_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.Convert.Workers = workers
		}
	}
	if v := os.Getenv("EML2MD_OVERWRITE"); v != "" {
		if overwrite, err := strconv.ParseBool(v); err == nil {
			c.Convert.Overwrite = overwrite
		}
	}
}
