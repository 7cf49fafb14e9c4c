package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Run modes
const (
	ModeServe    = "serve"    // Serve the host page over HTTP
	ModeTerminal = "terminal" // Redraw the readout on stdout
)

// Configuration validation constants
const (
	MinPort = 1     // Minimum valid port number
	MaxPort = 65535 // Maximum valid port number

	// Default values
	DefaultMode      = ModeServe
	DefaultHTTPPort  = 8080
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// TLS holds the certificate pair used to serve HTTPS
type TLS struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// Enabled reports whether a certificate pair is configured
func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// Config represents the application configuration
type Config struct {
	Mode      string `yaml:"mode"`
	HTTPHost  string `yaml:"http_host"` // empty listens on all interfaces
	HTTPPort  int    `yaml:"http_port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	TLS       TLS    `yaml:"tls"`
}

// Load loads configuration from a YAML file and applies environment variable overrides.
// An empty path skips the file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304 -- Config file path is provided by administrator via CLI flag, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// Validate checks an already populated configuration, e.g. after a CLI override
func (c *Config) Validate() error {
	return validate(c)
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("WALLCLOCK_MODE"); val != "" {
		cfg.Mode = strings.ToLower(val)
	}

	if val := os.Getenv("WALLCLOCK_HTTP_HOST"); val != "" {
		cfg.HTTPHost = val
	}

	if val := os.Getenv("WALLCLOCK_HTTP_PORT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid WALLCLOCK_HTTP_PORT: must be an integer, got %q", val)
		}
		cfg.HTTPPort = i
	}

	if val := os.Getenv("WALLCLOCK_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	if val := os.Getenv("WALLCLOCK_LOG_FORMAT"); val != "" {
		cfg.LogFormat = strings.ToLower(val)
	}

	if val := os.Getenv("WALLCLOCK_TLS_CERT_FILE"); val != "" {
		cfg.TLS.CertFile = val
	}

	if val := os.Getenv("WALLCLOCK_TLS_KEY_FILE"); val != "" {
		cfg.TLS.KeyFile = val
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Mode {
	case ModeServe, ModeTerminal:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeServe, ModeTerminal, cfg.Mode)
	}

	if cfg.HTTPPort < MinPort || cfg.HTTPPort > MaxPort {
		return fmt.Errorf("http_port must be between %d and %d", MinPort, MaxPort)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", cfg.LogFormat)
	}

	// Cert and key come as a pair
	if (cfg.TLS.CertFile == "") != (cfg.TLS.KeyFile == "") {
		return fmt.Errorf("tls.cert_file and tls.key_file must be set together")
	}

	return nil
}
