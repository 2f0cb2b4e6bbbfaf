package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

// TestScan_OpenSquare numbers a fully open 3x3 grid: the corner starts
// both directions under a single number, the rest of the top row and
// left column start one direction each.
func TestScan_OpenSquare(t *testing.T) {
	g := mustParse(t, "N N N\nN W W\nN W W")

	metas := Scan(g)
	want := []ClueMeta{
		{Number: 1, Direction: Across, Row: 0, Col: 0, Length: 3},
		{Number: 1, Direction: Down, Row: 0, Col: 0, Length: 3},
		{Number: 2, Direction: Down, Row: 0, Col: 1, Length: 3},
		{Number: 3, Direction: Down, Row: 0, Col: 2, Length: 3},
		{Number: 4, Direction: Across, Row: 1, Col: 0, Length: 3},
		{Number: 5, Direction: Across, Row: 2, Col: 0, Length: 3},
	}
	assert.Equal(t, want, metas)
}

// TestScan_BlockSplitsRow verifies a block restarts numbering on the
// far side and that single-cell runs are never numbered.
func TestScan_BlockSplitsRow(t *testing.T) {
	g := mustParse(t, "N W B N W")

	metas := Scan(g)
	want := []ClueMeta{
		{Number: 1, Direction: Across, Row: 0, Col: 0, Length: 2},
		{Number: 2, Direction: Across, Row: 0, Col: 3, Length: 2},
	}
	assert.Equal(t, want, metas)
}

// TestScan_SingleColumn has one down word and no across words: a
// 1-wide grid can never satisfy the "letter immediately after" rule
// for across.
func TestScan_SingleColumn(t *testing.T) {
	g := mustParse(t, "N\nW\nW\nW\nW")

	metas := Scan(g)
	want := []ClueMeta{
		{Number: 1, Direction: Down, Row: 0, Col: 0, Length: 5},
	}
	assert.Equal(t, want, metas)
}

// TestScan_IsolatedLetter covers a letter cell surrounded by blocks:
// it belongs to no word and takes no number.
func TestScan_IsolatedLetter(t *testing.T) {
	g := mustParse(t, "B W B\nB B B\nB B B")
	assert.Empty(t, Scan(g))
}

// TestScan_AllBlocks returns no metadata for a fully blocked grid.
func TestScan_AllBlocks(t *testing.T) {
	g := mustParse(t, "B B\nB B")
	assert.Empty(t, Scan(g))
}

// TestScan_IgnoresMarkedNumbers verifies Scan derives numbering purely
// from topology: a 'W' in a start position still starts a word, and an
// 'N' mid-word does not.
func TestScan_IgnoresMarkedNumbers(t *testing.T) {
	// Same topology as "N W" row, but mismarked cells.
	g := mustParse(t, "W N W")
	metas := Scan(g)
	want := []ClueMeta{
		{Number: 1, Direction: Across, Row: 0, Col: 0, Length: 3},
	}
	assert.Equal(t, want, metas)
}
