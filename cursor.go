// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/upsight-tools/go-datamine/models"
)

// escapedCommaMark temporarily stands in for an escaped comma so the row
// can be split on the remaining separator commas. Same trick the provider's
// reference binding uses.
const escapedCommaMark = "$|$"

const maxLineSize = 1 << 20

// cursor is a forward-only reader over a query result stream. The first
// line is the column header; every following line is one record encoded
// with the provider's escaping rules.
type cursor struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	columns []string
	begun   bool
}

func newCursor(body io.ReadCloser) *cursor {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &cursor{body: body, scanner: scanner}
}

// started reports whether any bytes of the stream have been consumed. An
// untouched cursor still allows a raw byte-for-byte copy via raw().
func (c *cursor) started() bool {
	return c.begun
}

// raw exposes the underlying stream for a verbatim copy. Only meaningful
// while started() is false.
func (c *cursor) raw() io.Reader {
	c.begun = true
	return c.body
}

// header reads the column row if it has not been read yet and returns the
// upper-cased, trimmed column names. Returns io.EOF when the stream is
// empty.
func (c *cursor) header() ([]string, error) {
	if c.columns != nil {
		return c.columns, nil
	}

	line, err := c.nextLine()
	if err != nil {
		return nil, err
	}

	line = stripNonASCII(line)
	line = strings.ToUpper(line)

	parts := strings.Split(line, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		columns = append(columns, strings.TrimSpace(part))
	}

	c.columns = columns
	return c.columns, nil
}

// next returns the next record, skipping rows whose field count does not
// match the header. Returns io.EOF once the stream is exhausted.
func (c *cursor) next() (*models.Record, error) {
	columns, err := c.header()
	if err != nil {
		return nil, err
	}

	for {
		line, err := c.nextLine()
		if err != nil {
			return nil, err
		}

		values := parseRecordLine(line)
		if len(values) != len(columns) {
			// malformed row, same silent skip as the reference binding
			continue
		}

		return &models.Record{Columns: columns, Values: values}, nil
	}
}

func (c *cursor) nextLine() (string, error) {
	c.begun = true

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: read result stream: %v", ErrRemoteService, err)
		}
		return "", io.EOF
	}

	return c.scanner.Text(), nil
}

// writeRemaining writes the header row plus every record not yet consumed
// to dst as CSV. Used by Download when fetches already advanced the cursor.
func (c *cursor) writeRemaining(dst io.Writer) error {
	columns, err := c.header()
	if err != nil && err != io.EOF {
		return err
	}
	if err == io.EOF {
		return fmt.Errorf("%w: result stream is empty", ErrNoResult)
	}

	w := csv.NewWriter(dst)
	if err = w.Write(columns); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}

	for {
		record, err := c.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err = w.Write(record.Values); err != nil {
			return fmt.Errorf("write result file: %w", err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}

	return nil
}

func (c *cursor) close() {
	if c.body != nil {
		_ = c.body.Close()
	}
}

// parseRecordLine applies the provider's field escaping rules: `\N` is a
// NULL (empty) value, `\:` an escaped colon, and `\,` a literal comma
// inside a field.
func parseRecordLine(line string) []string {
	line = strings.ReplaceAll(line, `\N`, "")
	line = strings.ReplaceAll(line, `\:`, ":")
	line = strings.ReplaceAll(line, `\,`, escapedCommaMark)

	parts := strings.Split(line, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ReplaceAll(part, escapedCommaMark, ",")
		values = append(values, strings.TrimSpace(part))
	}

	return values
}

func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
