package solver

import "github.com/roach88/regrid/internal/grid"

// buildGrid renders a candidate solved state as a display grid: any
// unknown or block cell renders as block, a chosen start cell renders
// as numbered, every other letter cell renders as plain.
func buildGrid(st *state, width, height int) grid.Grid {
	starts := make(map[int]bool, len(st.starts))
	for _, cell := range st.starts {
		starts[cell] = true
	}

	g := make(grid.Grid, height)
	for r := 0; r < height; r++ {
		g[r] = make([]grid.Cell, width)
		for c := 0; c < width; c++ {
			i := r*width + c
			switch {
			case starts[i]:
				g[r][c] = grid.Numbered
			case st.board.cells[i].kind == kindLetter:
				g[r][c] = grid.White
			default:
				g[r][c] = grid.Block
			}
		}
	}
	return g
}

// validate re-derives the clue metadata from the freshly built grid
// and compares it against the original specs: same across count, same
// down count, and for every spec an extracted entry with the same
// number and direction whose measured length matches exactly.
//
// This re-derivation is the only trusted ground truth. The search's
// own bookkeeping believes the assignment is solved; a mismatch here
// rejects it anyway and sends the search back for more candidates.
func (s *searcher) validate(st *state) bool {
	g := buildGrid(st, s.width, s.height)
	metas := grid.Scan(g)

	type metaKey struct {
		number int
		dir    grid.Direction
	}
	lengths := make(map[metaKey]int, len(metas))
	gotAcross, gotDown := 0, 0
	for _, m := range metas {
		lengths[metaKey{m.Number, m.Direction}] = m.Length
		if m.Direction == grid.Across {
			gotAcross++
		} else {
			gotDown++
		}
	}

	wantAcross, wantDown := 0, 0
	for _, spec := range s.specs {
		if spec.Across != nil {
			wantAcross++
			if lengths[metaKey{spec.Number, grid.Across}] != spec.Across.Length {
				return false
			}
		}
		if spec.Down != nil {
			wantDown++
			if lengths[metaKey{spec.Number, grid.Down}] != spec.Down.Length {
				return false
			}
		}
	}

	return gotAcross == wantAcross && gotDown == wantDown
}
