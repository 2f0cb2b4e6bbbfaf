package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/regrid/internal/grid"
	"github.com/roach88/regrid/internal/testutil"
)

func TestMatch_SingleMatch(t *testing.T) {
	tpl := testutil.MustGrid(t, "N W B N W")
	other := testutil.MustGrid(t, "N W W W W")

	got, ok := Match(grid.LengthSignature(tpl), 5, 1, []grid.Grid{other, tpl})
	require.True(t, ok)
	assert.True(t, got.Equal(tpl))
}

func TestMatch_NoMatch(t *testing.T) {
	tpl := testutil.MustGrid(t, "N W B N W")

	_, ok := Match("1-a-4", 5, 1, []grid.Grid{tpl})
	assert.False(t, ok)
}

// TestMatch_DimensionFilter: a template with the right signature but
// wrong outer dimensions never matches.
func TestMatch_DimensionFilter(t *testing.T) {
	tpl := testutil.MustGrid(t, "N W B N W")

	_, ok := Match(grid.LengthSignature(tpl), 6, 1, []grid.Grid{tpl})
	assert.False(t, ok)
}

// TestMatch_AmbiguityRejected: two structurally different templates
// sharing the signature behave exactly like zero matches.
func TestMatch_AmbiguityRejected(t *testing.T) {
	a := testutil.MustGrid(t, "N W B N W\nB B B B B")
	b := testutil.MustGrid(t, "B B B B B\nN W B N W")
	require.Equal(t, grid.LengthSignature(a), grid.LengthSignature(b))
	require.False(t, a.Equal(b))

	_, ok := Match(grid.LengthSignature(a), 5, 2, []grid.Grid{a, b})
	assert.False(t, ok)
}

func TestMatch_EmptyTemplates(t *testing.T) {
	_, ok := Match("1-a-2", 5, 1, nil)
	assert.False(t, ok)
}
