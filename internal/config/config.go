// Package config holds ecomforge configuration: data directory layout,
// generator sizing, and report options. Values load from a YAML file with
// environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all ecomforge configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Data      DataConfig      `yaml:"data"`
	Generator GeneratorConfig `yaml:"generator"`
	Report    ReportConfig    `yaml:"report"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DataConfig locates the dataset files and the database.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	Format       string `yaml:"format"` // json, csv
	DatabasePath string `yaml:"database_path"`
}

// GeneratorConfig sizes the synthetic datasets.
type GeneratorConfig struct {
	Seed       int64 `yaml:"seed"`
	Users      int   `yaml:"users"`
	Products   int   `yaml:"products"`
	Orders     int   `yaml:"orders"`
	OrderItems int   `yaml:"order_items"`
	Reviews    int   `yaml:"reviews"`
}

// ReportConfig tunes report output.
type ReportConfig struct {
	TopCustomers int `yaml:"top_customers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "ecomforge",
		Version: "1.0.0",

		Data: DataConfig{
			Dir:          "data",
			Format:       "json",
			DatabasePath: filepath.Join("database", "ecom.db"),
		},

		Generator: GeneratorConfig{
			Seed:       2025,
			Users:      50,
			Products:   40,
			Orders:     100,
			OrderItems: 200,
			Reviews:    80,
		},

		Report: ReportConfig{
			TopCustomers: 10,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error: defaults apply, then environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// applyEnvOverrides lets environment variables override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ECOMFORGE_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("ECOMFORGE_DATA_FORMAT"); v != "" {
		c.Data.Format = v
	}
	if v := os.Getenv("ECOMFORGE_DB"); v != "" {
		c.Data.DatabasePath = v
	}
	if v := os.Getenv("ECOMFORGE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Generator.Seed = seed
		}
	}
	if v := os.Getenv("ECOMFORGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Data.DatabasePath == "" {
		return fmt.Errorf("data.database_path must not be empty")
	}
	if c.Data.Format != "json" && c.Data.Format != "csv" {
		return fmt.Errorf("data.format must be json or csv, got %q", c.Data.Format)
	}
	if c.Report.TopCustomers <= 0 {
		return fmt.Errorf("report.top_customers must be positive, got %d", c.Report.TopCustomers)
	}
	return nil
}
