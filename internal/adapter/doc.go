// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

// Package adapter provides the transport layer for communicating with the
// DataMine analytics service.
//
// The only implementation is [HTTPRemoteService], built on resty. It holds
// the authenticated HTTP session (basic auth over a shared connection pool)
// and exposes the three remote operations the client needs: a pre-flight
// access check, query submission, and result retrieval. The method set
// satisfies the client package's RemoteService interface structurally, so
// this package stays free of upward imports.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapStatusError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403). A 202 response from the
// results endpoint maps to [models.ErrResultPending], which callers poll on.
package adapter
