package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the recipe HTTP API
//	-g string   address of the gRPC health endpoint
//	-i int      online check interval (seconds)
//	-t int      request timeout (seconds)
//	-d string   path of the SQLite database file
//	-l string   log backend: slog, slog-json or zap
//	-v          debug logging
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-i", "-t", "-d", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the recipe API")
	fs.StringVar(&cfg.HealthAddr, "g", cfg.HealthAddr, "address of the gRPC health endpoint")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogBackend, "l", cfg.LogBackend, "log backend (slog, slog-json, zap)")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
