// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Levi Kanwischer

package datamine

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursorOver(payload string) *cursor {
	return newCursor(io.NopCloser(strings.NewReader(payload)))
}

func TestParseRecordLine_EscapingRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "apples,1",
			want: []string{"apples", "1"},
		},
		{
			name: "null marker becomes empty",
			line: `apples,\N`,
			want: []string{"apples", ""},
		},
		{
			name: "escaped colon",
			line: `12\:30,1`,
			want: []string{"12:30", "1"},
		},
		{
			name: "escaped comma stays inside field",
			line: `fruit\, dried,7`,
			want: []string{"fruit, dried", "7"},
		},
		{
			name: "fields are trimmed",
			line: " apples , 1 ",
			want: []string{"apples", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecordLine(tt.line))
		})
	}
}

func TestCursor_HeaderUppercasedAndTrimmed(t *testing.T) {
	c := cursorOver(" item , inv \napples,1\n")

	columns, err := c.header()

	require.NoError(t, err)
	assert.Equal(t, []string{"ITEM", "INV"}, columns)
}

func TestCursor_HeaderStripsNonASCII(t *testing.T) {
	c := cursorOver("itém,inv\n")

	columns, err := c.header()

	require.NoError(t, err)
	assert.Equal(t, []string{"ITM", "INV"}, columns)
}

func TestCursor_EmptyStream(t *testing.T) {
	c := cursorOver("")

	_, err := c.header()

	assert.ErrorIs(t, err, io.EOF)
}

func TestCursor_SkipsMalformedRows(t *testing.T) {
	c := cursorOver("item,inv\napples,1\nbroken-row\nbananas,2\n")

	first, err := c.next()
	require.NoError(t, err)
	assert.Equal(t, []string{"apples", "1"}, first.Values)

	second, err := c.next()
	require.NoError(t, err)
	assert.Equal(t, []string{"bananas", "2"}, second.Values)

	_, err = c.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCursor_StartedTracksConsumption(t *testing.T) {
	c := cursorOver("item,inv\napples,1\n")

	assert.False(t, c.started())

	_, err := c.header()
	require.NoError(t, err)

	assert.True(t, c.started())
}

func TestCursor_WriteRemainingQuotesEmbeddedCommas(t *testing.T) {
	c := cursorOver("item,inv\nfruit\\, dried,7\n")

	_, err := c.header()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, c.writeRemaining(&sb))

	assert.Equal(t, "ITEM,INV\n\"fruit, dried\",7\n", sb.String())
}
