package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/regrid/internal/clue"
)

func acrossSpec(number, length int, letters string) clue.NumberSpec {
	return clue.NumberSpec{Number: number, Across: &clue.DirectionSpec{Length: length, Letters: letters}}
}

func downSpec(number, length int, letters string) clue.NumberSpec {
	return clue.NumberSpec{Number: number, Down: &clue.DirectionSpec{Length: length, Letters: letters}}
}

// TestCheckPlacement_ReadOnly: repeated checks never mutate the board.
func TestCheckPlacement_ReadOnly(t *testing.T) {
	b := newBoard(5, 5)
	spec := acrossSpec(1, 3, "CAT")

	snapshot := b.clone()
	for i := 0; i < 3; i++ {
		checkPlacement(b, spec, 0)
	}
	assert.Equal(t, snapshot.cells, b.cells)
}

func TestCheckPlacement_Geometry(t *testing.T) {
	b := newBoard(4, 3)

	// col+length must fit the width.
	assert.True(t, checkPlacement(b, acrossSpec(1, 4, ""), 0))
	assert.False(t, checkPlacement(b, acrossSpec(1, 4, ""), 1))

	// row+length must fit the height.
	assert.True(t, checkPlacement(b, downSpec(1, 3, ""), 0))
	assert.False(t, checkPlacement(b, downSpec(1, 3, ""), 4))
}

func TestCheckPlacement_StartOnBlock(t *testing.T) {
	b := newBoard(4, 1)
	b.cells[0].kind = kindBlock
	assert.False(t, checkPlacement(b, acrossSpec(1, 2, ""), 0))
}

// TestCheckPlacement_BoundaryCells: the cells just before and after a
// word must be settable to block, so a fixed letter there forbids the
// placement.
func TestCheckPlacement_BoundaryCells(t *testing.T) {
	b := newBoard(5, 1)
	b.cells[3].kind = kindLetter

	// Word at cells 1-2 needs cell 3 as its trailing block.
	assert.False(t, checkPlacement(b, acrossSpec(1, 2, ""), 1))
	// Word at cells 3-4 starts on the letter, leading block at 2 is fine.
	assert.True(t, checkPlacement(b, acrossSpec(1, 2, ""), 3))
}

// TestCheckPlacement_CrossingCharConflict: an already-fixed character
// on a crossing cell must match the spec's requirement.
func TestCheckPlacement_CrossingCharConflict(t *testing.T) {
	b := newBoard(3, 3)
	applyPlacement(b, acrossSpec(1, 3, "CAT"), 0)

	// Down word crossing at cell 1 ('A') accepts a matching letter...
	assert.True(t, checkPlacement(b, downSpec(2, 3, "ALE"), 1))
	// ...and rejects a conflicting one.
	assert.False(t, checkPlacement(b, downSpec(2, 3, "ONE"), 1))
	// Unconstrained crossing letters always fit.
	assert.True(t, checkPlacement(b, downSpec(2, 3, ""), 1))
}

// TestCheckPlacement_IntraSpecConflict: the two components of one spec
// share the start cell, so their first letters must agree even when
// the board itself has no opinion yet.
func TestCheckPlacement_IntraSpecConflict(t *testing.T) {
	b := newBoard(3, 3)

	agree := clue.NumberSpec{
		Number: 1,
		Across: &clue.DirectionSpec{Length: 3, Letters: "CAT"},
		Down:   &clue.DirectionSpec{Length: 3, Letters: "COW"},
	}
	assert.True(t, checkPlacement(b, agree, 0))

	conflict := clue.NumberSpec{
		Number: 1,
		Across: &clue.DirectionSpec{Length: 3, Letters: "CAT"},
		Down:   &clue.DirectionSpec{Length: 3, Letters: "OWL"},
	}
	assert.False(t, checkPlacement(b, conflict, 0))
}

// TestApplyPlacement_CommitsTraversal: apply performs the same
// traversal destructively: start and word cells become letters with
// their required characters, in-bounds boundary cells become blocks.
func TestApplyPlacement_CommitsTraversal(t *testing.T) {
	b := newBoard(5, 1)
	spec := acrossSpec(1, 2, "AB")
	require.True(t, checkPlacement(b, spec, 1))

	applyPlacement(b, spec, 1)

	assert.Equal(t, kindBlock, b.cells[0].kind)
	assert.Equal(t, boardCell{kind: kindLetter, ch: 'A'}, b.cells[1])
	assert.Equal(t, boardCell{kind: kindLetter, ch: 'B'}, b.cells[2])
	assert.Equal(t, kindBlock, b.cells[3].kind)
	assert.Equal(t, kindUnknown, b.cells[4].kind)
}

// TestApplyPlacement_KeepsExistingChar: a character fixed by an
// earlier spec is never overwritten by a later unconstrained one.
func TestApplyPlacement_KeepsExistingChar(t *testing.T) {
	b := newBoard(3, 3)
	applyPlacement(b, acrossSpec(1, 3, "CAT"), 0)
	applyPlacement(b, downSpec(2, 3, ""), 1)

	assert.Equal(t, 'A', b.cells[1].ch)
}

func TestCandidatesFor(t *testing.T) {
	// Across length 3 in a 4x2 grid: cols 0-1 of each row.
	cells := candidatesFor(acrossSpec(1, 3, ""), 4, 2)
	assert.Equal(t, []int{0, 1, 4, 5}, cells)

	// Both components constrain the same start cell.
	both := clue.NumberSpec{
		Number: 1,
		Across: &clue.DirectionSpec{Length: 3},
		Down:   &clue.DirectionSpec{Length: 2},
	}
	cells = candidatesFor(both, 4, 2)
	assert.Equal(t, []int{0, 1}, cells)

	// Word longer than the grid: no candidates.
	assert.Empty(t, candidatesFor(acrossSpec(1, 5, ""), 4, 2))
}
