package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/regrid/internal/grid"
)

// MustGrid parses a grid in the text wire format, failing the test on
// malformed input. Keeps fixture tables free of error plumbing.
func MustGrid(t *testing.T, s string) grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)
	return g
}
