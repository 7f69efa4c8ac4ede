// Package config loads runtime configuration for the QuickChat CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   directory holding sent_messages.json and stored_messages.json
//	-s string   message storage backend: json or sqlite
//	-db string  SQLite database file, relative to -d unless absolute
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-r string   records file read by the import command
//	-seed       load the demonstration records at start-up
//
// # JSON schema
//
// Keys missing from the file keep their earlier value:
//
//	{
//	  "data_dir": "./data",
//	  "storage": "sqlite",
//	  "database_file": "quickchat.db",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "records_file": "messages.json",
//	  "seed_records": true
//	}
//
// Call (*Config).Validate once loading is done.
package config
