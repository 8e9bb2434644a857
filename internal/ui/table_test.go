package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render(t *testing.T) {
	tbl := NewTable(
		Column{Header: "CIDR", Width: 18},
		Column{Header: "AZ", Width: 10},
	)
	tbl.AddRow(Text("10.0.0.0/24"), Styled("us-east-1a", FreeStyle))
	tbl.AddRow(Text("10.0.1.0/24"))
	assert.Equal(t, 2, tbl.Len())

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], TopLeft))
	assert.Contains(t, lines[1], "CIDR")
	assert.Contains(t, lines[3], "us-east-1a")
	assert.Contains(t, lines[4], "10.0.1.0/24")
	assert.True(t, strings.HasPrefix(lines[5], BottomLeft))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "ab...", padRight("abcdefgh", 5))
}
