// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

// Package datamine is a DBAPI-2.0 inspired client for the DataMine
// analytics service.
//
// A [DataMine] client is constructed with credentials and performs no
// network I/O until the session is opened. The usual flow runs inside
// [DataMine.WithSession], which guarantees the network session is released
// on every exit path:
//
//	dm := datamine.New(username, password)
//	err := dm.WithSession(ctx, func(dm *datamine.DataMine) error {
//		if err := dm.Execute(ctx, "select item, count(1) from fruit group by item;"); err != nil {
//			return err
//		}
//		return dm.Download("fruit.csv")
//	})
//
// Results can alternatively be consumed row by row with [DataMine.FetchOne],
// [DataMine.FetchMany], or [DataMine.FetchAll].
//
// Errors belong to a small taxonomy of sentinels ([ErrAuthentication],
// [ErrRemoteService], [ErrSession], [ErrNoResult]) that callers test with
// [errors.Is]; local filesystem failures wrap the underlying os error.
package datamine
