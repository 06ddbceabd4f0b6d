// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import "errors"

var (
	// ErrAuthentication reports that the DataMine service rejected the
	// configured credentials.
	ErrAuthentication = errors.New("authentication rejected")

	// ErrRemoteService reports that the DataMine service failed a request:
	// a rejected query, a failed transfer, or an unreachable endpoint. The
	// wrapped detail carries whatever diagnostic the service provided.
	ErrRemoteService = errors.New("remote service error")

	// ErrSession reports a misuse of the session lifecycle: a method was
	// invoked without an active session, or the session was opened twice.
	ErrSession = errors.New("session error")

	// ErrNoResult reports that a download or fetch was attempted without a
	// live result handle from a prior successful Execute.
	ErrNoResult = errors.New("no query result available")
)
