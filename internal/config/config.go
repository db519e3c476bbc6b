// Package config defines service configuration and its loading.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load(ctx) layers defaults, an optional .env file, an optional YAML file
//   and FISA_* environment variables, then validates the result.
// - Errors returned from this package wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// HTTP server timeouts in milliseconds.
	ReadTimeoutMS       int `koanf:"read_timeout_ms"`
	WriteTimeoutMS      int `koanf:"write_timeout_ms"`
	IdleTimeoutMS       int `koanf:"idle_timeout_ms"`
	ReadHeaderTimeoutMS int `koanf:"read_header_timeout_ms"`
	ShutdownTimeoutMS   int `koanf:"shutdown_timeout_ms"`

	// MetricsPath is where the Prometheus registry is exposed.
	MetricsPath string `koanf:"metrics_path"`

	// DocsEnabled mounts /api-docs and /openapi.yaml.
	DocsEnabled bool `koanf:"docs_enabled"`

	// SystemMetricsIntervalMS is the refresh period of the system gauges.
	SystemMetricsIntervalMS int `koanf:"system_metrics_interval_ms"`
}

// reservedPaths are served by the router and cannot host metrics.
var reservedPaths = map[string]struct{}{
	"/":             {},
	"/health":       {},
	"/get":          {},
	"/post":         {},
	"/api/score":    {},
	"/app/get":      {},
	"/app/post":     {},
	"/api-docs":     {},
	"/openapi.yaml": {},
}

// reservedPrefix is the embedded jump page tree.
const reservedPrefix = "/jump/"

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		LogFormat:               "text",
		Addr:                    ":8080",
		ReadTimeoutMS:           10_000,
		WriteTimeoutMS:          10_000,
		IdleTimeoutMS:           60_000,
		ReadHeaderTimeoutMS:     5_000,
		ShutdownTimeoutMS:       30_000,
		MetricsPath:             "/metrics",
		DocsEnabled:             true,
		SystemMetricsIntervalMS: 10_000,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("%w: metrics_path must start with /", ErrInvalidConfig)
	}
	if _, taken := reservedPaths[c.MetricsPath]; taken || strings.HasPrefix(c.MetricsPath, reservedPrefix) {
		return fmt.Errorf("%w: metrics_path %s collides with an API route", ErrInvalidConfig, c.MetricsPath)
	}
	for name, v := range map[string]int{
		"read_timeout_ms":            c.ReadTimeoutMS,
		"write_timeout_ms":           c.WriteTimeoutMS,
		"idle_timeout_ms":            c.IdleTimeoutMS,
		"read_header_timeout_ms":     c.ReadHeaderTimeoutMS,
		"shutdown_timeout_ms":        c.ShutdownTimeoutMS,
		"system_metrics_interval_ms": c.SystemMetricsIntervalMS,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, name)
		}
	}
	return nil
}

// ReadTimeout returns the server read timeout.
func (c *Config) ReadTimeout() time.Duration { return ms(c.ReadTimeoutMS) }

// WriteTimeout returns the server write timeout.
func (c *Config) WriteTimeout() time.Duration { return ms(c.WriteTimeoutMS) }

// IdleTimeout returns the keep-alive idle timeout.
func (c *Config) IdleTimeout() time.Duration { return ms(c.IdleTimeoutMS) }

// ReadHeaderTimeout returns the header read timeout.
func (c *Config) ReadHeaderTimeout() time.Duration { return ms(c.ReadHeaderTimeoutMS) }

// ShutdownTimeout bounds graceful shutdown.
func (c *Config) ShutdownTimeout() time.Duration { return ms(c.ShutdownTimeoutMS) }

// SystemMetricsInterval is the system gauge refresh period.
func (c *Config) SystemMetricsInterval() time.Duration { return ms(c.SystemMetricsIntervalMS) }

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }
