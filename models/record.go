// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package models

// Record is a single row from a query result set. Column order follows the
// result header, so Columns and Values are parallel slices.
type Record struct {
	// Columns holds the upper-cased header names of the result set.
	Columns []string

	// Values holds the field values of this row, already unescaped from the
	// provider's wire encoding.
	Values []string
}

// Get returns the value of the named column and whether the column exists.
// Column names are matched exactly against the upper-cased header.
func (r Record) Get(column string) (string, bool) {
	for i, name := range r.Columns {
		if name == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return "", false
}
