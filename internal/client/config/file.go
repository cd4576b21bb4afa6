package config

import (
	"os"

	"github.com/dmitrijs2005/recipebook/internal/configx"
	"github.com/dmitrijs2005/recipebook/internal/flagx"
	"github.com/dmitrijs2005/recipebook/internal/timex"
)

// FileConfig is the on-disk shape, JSON or YAML. Zero values leave the
// current setting alone.
type FileConfig struct {
	APIBaseURL          string         `json:"api_base_url" yaml:"api_base_url"`
	HealthAddr          string         `json:"health_addr" yaml:"health_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath        string         `json:"database_path" yaml:"database_path"`
	SessionTTL          timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	LogBackend          string         `json:"log_backend" yaml:"log_backend"`
	Debug               *bool          `json:"debug" yaml:"debug"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or decoded.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	var fc FileConfig
	if err := configx.DecodeFile(path, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.HealthAddr != "" {
		cfg.HealthAddr = fc.HealthAddr
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
	if fc.LogBackend != "" {
		cfg.LogBackend = fc.LogBackend
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
}
