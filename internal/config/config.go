package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the QuickChat CLI.
type Config struct {
	DataDir      string `validate:"required"`
	Storage      string `validate:"oneof=json sqlite"`
	DatabaseFile string `validate:"required_if=Storage sqlite"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	LogFormat    string `validate:"oneof=text json"`
	RecordsFile  string `validate:"required"`
	SeedRecords  bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.Storage = StorageJSON
	c.DatabaseFile = "quickchat.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.RecordsFile = "messages.json"
	c.SeedRecords = false
}

// Validate checks field values after all sources are applied.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
