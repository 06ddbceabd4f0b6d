// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrResultPending reports that a submitted query has been accepted by the
// DataMine service but its result set is not ready yet. Implementations of
// the remote-service contract return it (possibly wrapped) from FetchResult
// while the job is still processing, and callers poll until it clears.
var ErrResultPending = errors.New("query result pending")

// QueryJob identifies a query that the DataMine service has accepted for
// execution. The ID is the result handle used to retrieve the output.
type QueryJob struct {
	// ID is the server-assigned job identifier. The service historically
	// returned it as a JSON number, so it is normalised to a string during
	// decoding.
	ID string `json:"id"`
}

// UnmarshalJSON decodes a job object accepting the id as either a JSON
// string or a JSON number.
func (j *QueryJob) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID any `json:"id"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode query job: %w", err)
	}

	switch id := raw.ID.(type) {
	case string:
		j.ID = id
	case json.Number:
		j.ID = id.String()
	case nil:
		j.ID = ""
	default:
		return fmt.Errorf("decode query job: unsupported id type %T", raw.ID)
	}

	return nil
}
