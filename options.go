// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/upsight-tools/go-datamine/internal/logger"
)

// Option customises a [DataMine] client at construction time.
type Option func(*DataMine)

// WithServer sets the DataMine API root URL. Defaults to [DefaultServer].
func WithServer(serverURL string) Option {
	return func(dm *DataMine) {
		dm.server = serverURL
	}
}

// WithTimeout bounds each individual HTTP request made by the default
// transport.
func WithTimeout(timeout time.Duration) Option {
	return func(dm *DataMine) {
		dm.timeout = timeout
	}
}

// WithPollInterval sets the delay between result-readiness checks while a
// submitted query is still processing on the provider side.
func WithPollInterval(interval time.Duration) Option {
	return func(dm *DataMine) {
		if interval > 0 {
			dm.pollInterval = interval
		}
	}
}

// WithLogger attaches a zerolog logger to the client. Defaults to a no-op
// logger.
func WithLogger(log zerolog.Logger) Option {
	return func(dm *DataMine) {
		dm.log = &logger.Logger{Logger: log}
	}
}

// WithRemoteService substitutes the transport implementation. Intended for
// tests and for integrations that speak to the service through something
// other than the default HTTP adapter.
func WithRemoteService(rs RemoteService) Option {
	return func(dm *DataMine) {
		dm.rs = rs
	}
}
