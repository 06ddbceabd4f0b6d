// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/upsight-tools/go-datamine/internal/adapter"
	"github.com/upsight-tools/go-datamine/internal/logger"
	"github.com/upsight-tools/go-datamine/models"
)

// DefaultServer is the DataMine API root used when [WithServer] is not
// given.
const DefaultServer = "https://analytics.upsight.com/dashboard/datamine2"

const defaultPollInterval = 15 * time.Second

// DataMine is a DBAPI-2.0 inspired client for the DataMine service. A
// client owns at most one network session and at most one live result
// handle at a time; it is not safe for concurrent use.
type DataMine struct {
	username string
	password string

	server       string
	timeout      time.Duration
	pollInterval time.Duration

	rs  RemoteService
	log *logger.Logger

	opened bool
	job    *models.QueryJob
	cursor *cursor
}

// New constructs a client bound to the given credentials. No network I/O
// happens here; credential validation is deferred to [DataMine.Open].
func New(username, password string, opts ...Option) *DataMine {
	dm := &DataMine{
		username:     username,
		password:     password,
		server:       DefaultServer,
		pollInterval: defaultPollInterval,
		log:          logger.Nop(),
	}

	for _, opt := range opts {
		opt(dm)
	}

	return dm
}

// Open establishes the authenticated session with the DataMine service.
// Rejected credentials surface as [ErrAuthentication]; any other failure as
// [ErrRemoteService]. Opening an already-open session is [ErrSession].
func (dm *DataMine) Open(ctx context.Context) error {
	if dm.opened {
		return fmt.Errorf("%w: session already open", ErrSession)
	}

	if dm.rs == nil {
		rs, err := adapter.New(adapter.Config{
			BaseURL:  dm.server,
			Username: dm.username,
			Password: dm.password,
			Timeout:  dm.timeout,
		}, dm.log)
		if err != nil {
			return fmt.Errorf("create remote service: %w", err)
		}
		dm.rs = rs
	}

	if err := dm.rs.CheckAccess(ctx); err != nil {
		return mapRemoteError(err)
	}

	dm.opened = true
	dm.log.Debug().Str("server", dm.server).Msg("session opened")
	return nil
}

// Close releases the network session. It drops any live result handle,
// closes a partially consumed result stream, and is safe to call on a
// client whose session was never opened (in which case it does nothing).
func (dm *DataMine) Close() error {
	if !dm.opened {
		return nil
	}

	dm.opened = false
	dm.resetResult()

	if err := dm.rs.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	dm.log.Debug().Msg("session closed")
	return nil
}

// WithSession runs fn inside a scoped session: the session is opened
// before fn and released after it on every exit path. If fn fails, its
// error is returned and the close error (if any) is dropped; if fn
// succeeds, a close failure is surfaced.
func (dm *DataMine) WithSession(ctx context.Context, fn func(*DataMine) error) error {
	if err := dm.Open(ctx); err != nil {
		return err
	}

	fnErr := fn(dm)

	if closeErr := dm.Close(); closeErr != nil && fnErr == nil {
		return closeErr
	}

	return fnErr
}

// Execute submits query to the DataMine service and blocks until the
// service has the result ready, polling at the configured interval while
// the job is still processing. The query string is forwarded verbatim; the
// service is authoritative on its validity.
//
// A successful Execute stores the job as the live result handle,
// superseding any previous one. A failed Execute leaves no live handle, so
// a subsequent [DataMine.Download] fails with [ErrNoResult].
func (dm *DataMine) Execute(ctx context.Context, query string) error {
	if !dm.opened {
		return fmt.Errorf("%w: execute requires an open session", ErrSession)
	}

	dm.resetResult()

	job, err := dm.rs.SubmitQuery(ctx, query)
	if err != nil {
		return mapRemoteError(err)
	}

	body, err := dm.awaitResult(ctx, job.ID)
	if err != nil {
		return err
	}

	dm.job = &job
	dm.cursor = newCursor(body)
	dm.log.Debug().Str("query_id", job.ID).Msg("query result ready")
	return nil
}

// awaitResult polls FetchResult until the service stops reporting the job
// as pending, honoring ctx cancellation between polls.
func (dm *DataMine) awaitResult(ctx context.Context, queryID string) (io.ReadCloser, error) {
	for {
		body, err := dm.rs.FetchResult(ctx, queryID)
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, models.ErrResultPending) {
			return nil, mapRemoteError(err)
		}

		dm.log.Debug().Str("query_id", queryID).Msg("result pending")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dm.pollInterval):
		}
	}
}

// Download writes the live result set to path, overwriting any existing
// file. The data is staged in a temporary file in the target directory and
// renamed into place on success, so no partial file is left behind on
// failure.
//
// When the cursor is untouched the file contains exactly the bytes the
// service returned. When rows were already consumed via the fetch methods,
// the file contains the CSV header plus the remaining records.
//
// The result handle is consumed: after a successful Download the next call
// fails with [ErrNoResult] until a new Execute succeeds.
func (dm *DataMine) Download(path string) error {
	if !dm.opened {
		return fmt.Errorf("%w: download requires an open session", ErrSession)
	}
	if dm.job == nil || dm.cursor == nil {
		return fmt.Errorf("%w: download requires a prior successful execute", ErrNoResult)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".datamine-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}

	err = dm.writeResult(tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename result file: %w", err)
	}

	dm.log.Debug().Str("path", path).Str("query_id", dm.job.ID).Msg("result downloaded")
	dm.resetResult()
	return nil
}

func (dm *DataMine) writeResult(dst io.Writer) error {
	if !dm.cursor.started() {
		// raw byte-for-byte copy of the service response
		if _, err := io.Copy(dst, taggedReader{dm.cursor.raw()}); err != nil {
			if errors.Is(err, ErrRemoteService) {
				return err
			}
			return fmt.Errorf("write result file: %w", err)
		}
		return nil
	}

	if err := dm.cursor.writeRemaining(dst); err != nil {
		return err
	}
	return nil
}

// taggedReader marks read-side failures so Download can tell a transfer
// failure (remote) from a write failure (local) inside io.Copy.
type taggedReader struct {
	r io.Reader
}

func (t taggedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: read result stream: %v", ErrRemoteService, err)
	}
	return n, err
}

// FetchOne returns the next record of the live result set. The header row
// is read lazily on the first call. It returns io.EOF when the result set
// is exhausted, and [ErrNoResult] when no live result handle exists.
func (dm *DataMine) FetchOne() (*models.Record, error) {
	if !dm.opened {
		return nil, fmt.Errorf("%w: fetch requires an open session", ErrSession)
	}
	if dm.cursor == nil {
		return nil, fmt.Errorf("%w: fetch requires a prior successful execute", ErrNoResult)
	}

	return dm.cursor.next()
}

// FetchMany returns up to n records. A batch shorter than n means the
// result set ended; that is not an error.
func (dm *DataMine) FetchMany(n int) ([]models.Record, error) {
	records := make([]models.Record, 0, max(n, 0))

	for len(records) < n {
		record, err := dm.FetchOne()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, nil
}

// FetchAll returns every remaining record of the live result set.
func (dm *DataMine) FetchAll() ([]models.Record, error) {
	records := make([]models.Record, 0)

	for {
		record, err := dm.FetchOne()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
}

// Columns returns the upper-cased, trimmed header names of the live result
// set, reading the header row if it has not been read yet.
func (dm *DataMine) Columns() ([]string, error) {
	if !dm.opened {
		return nil, fmt.Errorf("%w: columns requires an open session", ErrSession)
	}
	if dm.cursor == nil {
		return nil, fmt.Errorf("%w: columns requires a prior successful execute", ErrNoResult)
	}

	return dm.cursor.header()
}

func (dm *DataMine) resetResult() {
	if dm.cursor != nil {
		dm.cursor.close()
	}
	dm.cursor = nil
	dm.job = nil
}
