// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"DATAMINE_SERVER":          "https://analytics.example.com/datamine2",
		"DATAMINE_USERNAME":        "alice",
		"DATAMINE_PASSWORD":        "s3cret",
		"DATAMINE_REQUEST_TIMEOUT": "45s",
		"DATAMINE_POLL_INTERVAL":   "5s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://analytics.example.com/datamine2", cfg.Server)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("DATAMINE_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.Server)
	assert.Zero(t, cfg.RequestTimeout)
}
