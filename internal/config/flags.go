package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/quickchat/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so -c/-config never reach this set.
// Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-db", "-l", "-f", "-r", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "message storage: json or sqlite")
	fs.StringVar(&cfg.DatabaseFile, "db", cfg.DatabaseFile, "sqlite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.RecordsFile, "r", cfg.RecordsFile, "records file for import")
	fs.BoolVar(&cfg.SeedRecords, "seed", cfg.SeedRecords, "load demonstration records at start-up")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
