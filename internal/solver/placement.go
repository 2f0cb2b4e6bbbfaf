package solver

import "github.com/roach88/regrid/internal/clue"

// wordRun is the cell traversal for one direction component of a spec
// placed at a given start cell: the word cells in order, the fixed
// letters (nil when unconstrained), and the boundary cells immediately
// before and after the word (-1 when out of bounds).
type wordRun struct {
	cells   []int
	letters []rune
	before  int
	after   int
}

// runsFor resolves a spec placement into its component traversals.
// Returns false when any present component does not fit the grid.
func runsFor(b *board, spec clue.NumberSpec, cell int) ([]wordRun, bool) {
	row, col := cell/b.width, cell%b.width
	var runs []wordRun

	if ds := spec.Across; ds != nil {
		if col+ds.Length > b.width {
			return nil, false
		}
		run := wordRun{letters: fixedLetters(ds), before: -1, after: -1}
		for i := 0; i < ds.Length; i++ {
			run.cells = append(run.cells, cell+i)
		}
		if col > 0 {
			run.before = cell - 1
		}
		if col+ds.Length < b.width {
			run.after = cell + ds.Length
		}
		runs = append(runs, run)
	}

	if ds := spec.Down; ds != nil {
		if row+ds.Length > b.height {
			return nil, false
		}
		run := wordRun{letters: fixedLetters(ds), before: -1, after: -1}
		for i := 0; i < ds.Length; i++ {
			run.cells = append(run.cells, cell+i*b.width)
		}
		if row > 0 {
			run.before = cell - b.width
		}
		if row+ds.Length < b.height {
			run.after = cell + ds.Length*b.width
		}
		runs = append(runs, run)
	}

	return runs, true
}

func fixedLetters(ds *clue.DirectionSpec) []rune {
	if ds.Letters == "" {
		return nil
	}
	return []rune(ds.Letters)
}

// checkPlacement reports whether the spec can be placed with its start
// at cell. Read-only: repeated calls never mutate the board, which is
// what lets the forward-checking lookahead reuse it against tentative
// boards.
//
// The start cell must not already be a block. For each component the
// word must fit, the in-bounds boundary cells must be settable to
// block, and every word cell must be settable to letter with the
// required character without conflicting with an already-fixed one.
// Both components are checked through a shared per-call overlay so
// that the crossing constraints of a two-direction spec (including the
// shared start cell) are enforced against each other, not just against
// the board.
func checkPlacement(b *board, spec clue.NumberSpec, cell int) bool {
	if b.cells[cell].kind == kindBlock {
		return false
	}

	runs, ok := runsFor(b, spec, cell)
	if !ok {
		return false
	}

	overlay := make(map[int]boardCell, 8)
	look := func(i int) boardCell {
		if c, ok := overlay[i]; ok {
			return c
		}
		return b.cells[i]
	}

	markBlock := func(i int) bool {
		if look(i).kind == kindLetter {
			return false
		}
		overlay[i] = boardCell{kind: kindBlock}
		return true
	}
	markLetter := func(i int, ch rune) bool {
		c := look(i)
		if c.kind == kindBlock {
			return false
		}
		if ch != 0 && c.ch != 0 && c.ch != ch {
			return false
		}
		if c.ch != 0 {
			ch = c.ch
		}
		overlay[i] = boardCell{kind: kindLetter, ch: ch}
		return true
	}

	for _, run := range runs {
		if run.before >= 0 && !markBlock(run.before) {
			return false
		}
		if run.after >= 0 && !markBlock(run.after) {
			return false
		}
		for i, wc := range run.cells {
			var ch rune
			if run.letters != nil {
				ch = run.letters[i]
			}
			if !markLetter(wc, ch) {
				return false
			}
		}
	}

	return true
}

// applyPlacement commits the spec's placement onto the board: the same
// traversal as checkPlacement, destructively. Callers must have
// checked the placement first; apply assumes no conflicts remain.
func applyPlacement(b *board, spec clue.NumberSpec, cell int) {
	runs, _ := runsFor(b, spec, cell)

	for _, run := range runs {
		if run.before >= 0 {
			b.cells[run.before].kind = kindBlock
		}
		if run.after >= 0 {
			b.cells[run.after].kind = kindBlock
		}
		for i, wc := range run.cells {
			b.cells[wc].kind = kindLetter
			if run.letters != nil && b.cells[wc].ch == 0 {
				b.cells[wc].ch = run.letters[i]
			}
		}
	}
}
