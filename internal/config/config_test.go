package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		DataDir:      ".",
		Storage:      "json",
		DatabaseFile: "quickchat.db",
		LogLevel:     "warn",
		LogFormat:    "text",
		RecordsFile:  "messages.json",
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
	require.NoError(t, defaults().Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"data_dir":  "/var/quickchat",
		"storage":   "sqlite",
		"log_level": "info",
	})
	os.Args = []string{"quickchat", "-c", path, "-l", "debug", "-seed"}

	cfg := LoadConfig()

	want := defaults()
	want.DataDir = "/var/quickchat"
	want.Storage = "sqlite"
	want.LogLevel = "debug"
	want.SeedRecords = true
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"sqlite with db file", func(c *Config) { c.Storage = StorageSQLite }, false},
		{"unknown storage", func(c *Config) { c.Storage = "redis" }, true},
		{"sqlite without db file", func(c *Config) { c.Storage = StorageSQLite; c.DatabaseFile = "" }, true},
		{"json without db file", func(c *Config) { c.DatabaseFile = "" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "config validation failed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
