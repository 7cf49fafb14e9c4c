// Package config provides configuration management for wallclock.
//
// This package handles loading configuration from an optional YAML file,
// applying environment variable overrides, setting defaults, and validating
// the configuration.
//
// Configuration sources (in order of precedence):
//   1. Environment variables (highest priority)
//   2. YAML configuration file
//   3. Default values (lowest priority)
//
// Supported environment variables:
//   - WALLCLOCK_MODE: Run mode (serve, terminal)
//   - WALLCLOCK_HTTP_HOST: Interface to listen on (empty = all)
//   - WALLCLOCK_HTTP_PORT: HTTP server port (1-65535)
//   - WALLCLOCK_LOG_LEVEL: Log level (debug, info, warn, error)
//   - WALLCLOCK_LOG_FORMAT: Log format (json, text)
//   - WALLCLOCK_TLS_CERT_FILE: TLS certificate path
//   - WALLCLOCK_TLS_KEY_FILE: TLS private key path
//
// Example configuration file (config.yaml):
//
//	mode: serve
//	http_host: "0.0.0.0"
//	http_port: 8080
//	log_level: "info"
//	log_format: "json"
//
//	tls:
//	  cert_file: /etc/wallclock/tls.crt
//	  key_file: /etc/wallclock/tls.key
//
// The readout format, tick interval and element id are fixed and not
// configurable.
package config
