// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"context"
	"errors"
	"fmt"

	"github.com/upsight-tools/go-datamine/internal/adapter"
)

// mapRemoteError translates a transport-level error into the client's
// public error taxonomy. Context cancellation passes through untouched so
// callers can keep testing against ctx.Err().
func mapRemoteError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrAuthentication, err)

	default:
		return fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
}
