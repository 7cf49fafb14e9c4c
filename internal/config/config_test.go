package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig_Success(t *testing.T) {
	configPath := writeConfig(t, `
mode: terminal
http_host: "127.0.0.1"
http_port: 9000
log_level: "debug"
log_format: "text"
tls:
  cert_file: /tmp/tls.crt
  key_file: /tmp/tls.key
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Mode != ModeTerminal {
		t.Errorf("Mode = %v, want terminal", cfg.Mode)
	}
	if cfg.HTTPHost != "127.0.0.1" {
		t.Errorf("HTTPHost = %v, want 127.0.0.1", cfg.HTTPHost)
	}
	if cfg.HTTPPort != 9000 {
		t.Errorf("HTTPPort = %v, want 9000", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.LogFormat)
	}
	if !cfg.TLS.Enabled() {
		t.Error("TLS should be enabled")
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %v, want 127.0.0.1:9000", cfg.Addr())
	}
}

func TestLoad_ApplyDefaults_Success(t *testing.T) {
	configPath := writeConfig(t, "log_level: info\n")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Mode", cfg.Mode, "serve"},
		{"HTTPHost", cfg.HTTPHost, ""},
		{"HTTPPort", cfg.HTTPPort, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "json"},
		{"TLS", cfg.TLS.Enabled(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %v, want :8080", cfg.Addr())
	}
}

func TestLoad_NoFile_UsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v, want nil", err)
	}
	if cfg.Mode != DefaultMode || cfg.HTTPPort != DefaultHTTPPort {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvOverrides_Success(t *testing.T) {
	configPath := writeConfig(t, `
mode: serve
http_port: 8080
log_level: info
`)

	t.Setenv("WALLCLOCK_MODE", "TERMINAL")
	t.Setenv("WALLCLOCK_HTTP_HOST", "localhost")
	t.Setenv("WALLCLOCK_HTTP_PORT", "9090")
	t.Setenv("WALLCLOCK_LOG_LEVEL", "debug")
	t.Setenv("WALLCLOCK_LOG_FORMAT", "TEXT")
	t.Setenv("WALLCLOCK_TLS_CERT_FILE", "/etc/tls.crt")
	t.Setenv("WALLCLOCK_TLS_KEY_FILE", "/etc/tls.key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Mode != ModeTerminal {
		t.Errorf("Mode = %v, want terminal (env override)", cfg.Mode)
	}
	if cfg.HTTPHost != "localhost" {
		t.Errorf("HTTPHost = %v, want localhost (env override)", cfg.HTTPHost)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %v, want 9090 (env override)", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug (env override)", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text (env override)", cfg.LogFormat)
	}
	if cfg.TLS.CertFile != "/etc/tls.crt" || cfg.TLS.KeyFile != "/etc/tls.key" {
		t.Errorf("TLS = %+v, want env override", cfg.TLS)
	}
}

func TestLoad_InvalidEnvPort_Error(t *testing.T) {
	t.Setenv("WALLCLOCK_HTTP_PORT", "eighty")

	if _, err := Load(""); err == nil {
		t.Error("Load() error = nil, want error for non-numeric WALLCLOCK_HTTP_PORT")
	}
}

func TestValidate_InvalidMode_Error(t *testing.T) {
	cfg := &Config{Mode: "window", HTTPPort: 8080, LogLevel: "info", LogFormat: "json"}

	if err := validate(cfg); err == nil {
		t.Error("validate() error = nil, want error for unknown mode")
	}
}

func TestValidate_InvalidHTTPPort_Error(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"port too low", 0},
		{"port too high", 70000},
		{"negative port", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: ModeServe, HTTPPort: tt.port, LogLevel: "info", LogFormat: "json"}

			if err := validate(cfg); err == nil {
				t.Errorf("validate() error = nil, want error for port %d", tt.port)
			}
		})
	}
}

func TestValidate_InvalidLogSettings_Error(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"unknown level", "verbose", "json"},
		{"unknown format", "info", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: ModeServe, HTTPPort: 8080, LogLevel: tt.level, LogFormat: tt.format}

			if err := validate(cfg); err == nil {
				t.Errorf("validate() error = nil, want error for level=%q format=%q", tt.level, tt.format)
			}
		})
	}
}

func TestValidate_PartialTLS_Error(t *testing.T) {
	cfg := &Config{
		Mode:      ModeServe,
		HTTPPort:  8080,
		LogLevel:  "info",
		LogFormat: "json",
		TLS:       TLS{CertFile: "/etc/tls.crt"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for cert without key")
	}
}

func TestLoad_MissingFile_Error(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestLoad_MalformedYAML_Error(t *testing.T) {
	configPath := writeConfig(t, `
mode: serve
  http_port: [[[
- this: is
  : malformed
`)

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() error = nil, want error for malformed YAML")
	}
}
