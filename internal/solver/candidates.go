package solver

import "github.com/roach88/regrid/internal/clue"

// candidatesFor precomputes the cell indices where geometry alone lets
// the spec's word(s) start: an across component needs col+length to
// fit the width, a down component needs row+length to fit the height.
// A spec with both components must satisfy both at the same cell.
//
// Pure function of dimensions and lengths, independent of board state
// and of other specs. Computed once before the search; the returned
// indices are ascending by construction.
func candidatesFor(spec clue.NumberSpec, width, height int) []int {
	var cells []int
	for i := 0; i < width*height; i++ {
		row, col := i/width, i%width
		if spec.Across != nil && col+spec.Across.Length > width {
			continue
		}
		if spec.Down != nil && row+spec.Down.Length > height {
			continue
		}
		cells = append(cells, i)
	}
	return cells
}
