// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"context"
	"io"

	"github.com/upsight-tools/go-datamine/models"
)

//go:generate mockgen -source=interfaces.go -destination=internal/mock/remote_service_mock.go -package=mock

// RemoteService defines the transport contract between the client and the
// DataMine service. The default implementation is the resty-backed adapter
// in internal/adapter; tests and integrations substitute their own via
// [WithRemoteService].
type RemoteService interface {
	// CheckAccess verifies connectivity and credentials against the service
	// root. It is called once when the session is opened. Rejected
	// credentials surface as an unauthorized/forbidden transport error.
	CheckAccess(ctx context.Context) error

	// SubmitQuery forwards the query string verbatim to the service and
	// returns the accepted job. The query may still be processing when
	// SubmitQuery returns.
	SubmitQuery(ctx context.Context, query string) (models.QueryJob, error)

	// FetchResult retrieves the result set of queryID as a raw byte stream
	// the caller must close. While the service is still processing the job,
	// FetchResult returns an error wrapping [models.ErrResultPending].
	FetchResult(ctx context.Context, queryID string) (io.ReadCloser, error)

	// Close releases the underlying network session. It is called exactly
	// once when the client session is closed.
	Close() error
}
