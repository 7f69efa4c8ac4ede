package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quickchat/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	Storage      string `json:"storage"`
	DatabaseFile string `json:"database_file"`
	LogLevel     string `json:"log_level"`
	LogFormat    string `json:"log_format"`
	RecordsFile  string `json:"records_file"`
	SeedRecords  bool   `json:"seed_records"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without that flag nothing happens. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	// start from the current values so absent keys are left alone
	jc := JsonConfig{
		DataDir:      cfg.DataDir,
		Storage:      cfg.Storage,
		DatabaseFile: cfg.DatabaseFile,
		LogLevel:     cfg.LogLevel,
		LogFormat:    cfg.LogFormat,
		RecordsFile:  cfg.RecordsFile,
		SeedRecords:  cfg.SeedRecords,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DataDir = jc.DataDir
	cfg.Storage = jc.Storage
	cfg.DatabaseFile = jc.DatabaseFile
	cfg.LogLevel = jc.LogLevel
	cfg.LogFormat = jc.LogFormat
	cfg.RecordsFile = jc.RecordsFile
	cfg.SeedRecords = jc.SeedRecords
}
