package client

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config locates the Megam API endpoint. Environment variables are parsed
// from the MEGAM_ prefix, e.g. MEGAM_HOST, MEGAM_PORT.
// Field names map directly to keys, so unprefixed HOST or DEBUG are never
// consulted. Credentials are not part of Config; pass them to New.
type Config struct {
	Scheme  string        `default:"http"`
	Host    string        `default:"localhost"`
	Port    string        `default:"9000"`
	Timeout time.Duration `default:"30s"`
	Debug   bool          `default:"false"`
}

// DefaultConfig returns the settings LoadConfig yields with an empty
// environment.
func DefaultConfig() Config {
	return Config{Scheme: "http", Host: "localhost", Port: "9000", Timeout: 30 * time.Second}
}

// LoadConfig reads Config from MEGAM_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MEGAM", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Debug().
		Str("scheme", cfg.Scheme).
		Str("host", cfg.Host).
		Str("port", cfg.Port).
		Dur("timeout", cfg.Timeout).
		Bool("debug", cfg.Debug).
		Msg("Megam client configuration loaded")

	return cfg, nil
}

// Validate reports every problem with cfg at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Host == "" {
		result = multierror.Append(result, fmt.Errorf("host is required"))
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		result = multierror.Append(result, fmt.Errorf("unsupported scheme %q", c.Scheme))
	}
	if c.Port != "" {
		if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
			result = multierror.Append(result, fmt.Errorf("invalid port %q", c.Port))
		}
	}
	if c.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be > 0"))
	}
	return result.ErrorOrNil()
}

// BaseURL renders scheme://host[:port]. An empty Port leaves the scheme
// default in place.
func (c Config) BaseURL() string {
	if c.Port == "" {
		return c.Scheme + "://" + c.Host
	}
	return c.Scheme + "://" + net.JoinHostPort(c.Host, c.Port)
}
