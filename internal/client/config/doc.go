// Package config loads runtime configuration for the recipebook client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file given with -c or -config. Files ending in .yaml or
//     .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080",
//	  "health_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "database_path": "recipebook.db",
//	  "session_ttl": "24h",
//	  "log_backend": "zap"
//	}
//
// The package does not read environment variables.
package config
