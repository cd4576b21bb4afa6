package config

import (
	"os"

	"github.com/dmitrijs2005/recipebook/internal/configx"
	"github.com/dmitrijs2005/recipebook/internal/flagx"
	"github.com/dmitrijs2005/recipebook/internal/timex"
)

// FileConfig is the on-disk shape (JSON, or YAML for .yaml/.yml). Durations
// accept "15m" as well as integer nanoseconds. Empty values keep the
// current setting.
type FileConfig struct {
	HTTPAddr        string         `json:"http_addr" yaml:"http_addr"`
	HealthAddr      string         `json:"health_addr" yaml:"health_addr"`
	DatabaseDSN     string         `json:"database_dsn" yaml:"database_dsn"`
	S3RootUser      string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword  string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket        string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region        string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	PresignTTL      timex.Duration `json:"presign_ttl" yaml:"presign_ttl"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogBackend      string         `json:"log_backend" yaml:"log_backend"`
	Debug           *bool          `json:"debug" yaml:"debug"`
}

// parseFile overlays config with the file named by -c or -config. It panics
// if the file cannot be read or decoded.
func parseFile(config *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	var fc FileConfig
	if err := configx.DecodeFile(path, &fc); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, fc.HTTPAddr)
	setString(&config.HealthAddr, fc.HealthAddr)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.S3RootUser, fc.S3RootUser)
	setString(&config.S3RootPassword, fc.S3RootPassword)
	setString(&config.S3Bucket, fc.S3Bucket)
	setString(&config.S3Region, fc.S3Region)
	setString(&config.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&config.LogBackend, fc.LogBackend)
	if fc.PresignTTL.Duration > 0 {
		config.PresignTTL = fc.PresignTTL.Duration
	}
	if fc.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.Debug != nil {
		config.Debug = *fc.Debug
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
