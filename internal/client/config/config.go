package config

import "time"

// Config holds runtime settings for the recipebook terminal client.
//
// Units: intervals and timeouts are time.Duration; the flags take seconds.
type Config struct {
	APIBaseURL          string
	HealthAddr          string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DatabasePath        string
	SessionTTL          time.Duration
	LogBackend          string
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.HealthAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "recipebook.db"
	c.SessionTTL = 24 * time.Hour
	c.LogBackend = "slog"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
