// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultServer is the DataMine API root used when no server is configured.
const DefaultServer = "https://analytics.upsight.com/dashboard/datamine2"

const (
	defaultRequestTimeout = 30 * time.Second
	defaultPollInterval   = 15 * time.Second
)

// Config holds every setting the datamine client and CLI need. It is
// populated by merging environment variables over built-in defaults; the
// CLI applies its flags on top.
type Config struct {
	// Server is the DataMine API root URL.
	// Env: DATAMINE_SERVER
	Server string `env:"SERVER"`

	// Username is the login for the DataMine service.
	// Env: DATAMINE_USERNAME
	Username string `env:"USERNAME"`

	// Password is the password for the DataMine service. Prefer the
	// environment variable over a command-line flag so the secret does not
	// land in shell history or process listings.
	// Env: DATAMINE_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds each individual HTTP request (e.g. "30s").
	// Env: DATAMINE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is the delay between result-readiness checks while a
	// query is still processing on the provider side (e.g. "15s").
	// Env: DATAMINE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetConfig assembles the configuration from environment variables merged
// over the built-in defaults and validates the result.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

func defaults() *Config {
	return &Config{
		Server:         DefaultServer,
		RequestTimeout: defaultRequestTimeout,
		PollInterval:   defaultPollInterval,
	}
}

func (c *Config) validate() error {
	server := strings.TrimSpace(c.Server)
	if server == "" {
		return fmt.Errorf("config validation: %w", ErrEmptyServer)
	}

	// schemeless addresses are accepted; the adapter defaults them to https
	if !strings.Contains(server, "://") {
		server = "https://" + server
	}

	u, err := url.Parse(server)
	if err != nil {
		return fmt.Errorf("config validation: %w: %v", ErrInvalidServer, err)
	}
	if u.Host == "" {
		return fmt.Errorf("config validation: %w: missing host in %q", ErrInvalidServer, server)
	}

	return nil
}
