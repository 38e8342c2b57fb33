package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "handle emoji correctly",
			input:    "🎵 Music",
			width:    15,
			expected: "🎵 Music       ",
		},
		{
			name:     "truncate emoji text",
			input:    "🎵 This is a very long song title",
			width:    15,
			expected: "🎵 This is a...",
		},
		{
			name:     "handle unicode characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate unicode text",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語... ", // wide runes leave one column over
		},
		{
			name:     "width smaller than ellipsis",
			input:    "Hello",
			width:    2,
			expected: "..",
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			assert.Equal(t, tt.expected, result)
			if tt.width > 0 {
				assert.Equal(t, tt.width, runewidth.StringWidth(result), "display width of %q", result)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tbl := &table{header: []string{"CODE", "NAME"}}
	tbl.add("6", "Invalid parameters")
	tbl.add("29", "Rate limit")

	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))

	expected := "CODE  NAME\n" +
		"6     Invalid parameters\n" +
		"29    Rate limit\n"
	assert.Equal(t, expected, buf.String())
}

func TestTable_MaxWidth(t *testing.T) {
	tbl := &table{
		header:    []string{"A", "B"},
		maxWidths: []int{6, 0},
	}
	tbl.add("a very long cell", "x")

	var buf bytes.Buffer
	require.NoError(t, tbl.write(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a v...  x", lines[1])
}
