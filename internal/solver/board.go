package solver

// cellKind is the resolution state of one working-board cell.
//
// Transitions are monotonic: unknown may become block or letter, and a
// cell never changes between block and letter. The placement checker
// enforces this; nothing else writes cells.
type cellKind uint8

const (
	kindUnknown cellKind = iota
	kindBlock
	kindLetter
)

// boardCell is one working cell: its kind plus the fixed character, if
// any. ch is only meaningful for letter cells; 0 means unconstrained.
type boardCell struct {
	kind cellKind
	ch   rune
}

// board is the solver's working grid, flat row-major storage.
type board struct {
	width  int
	height int
	cells  []boardCell
}

func newBoard(width, height int) *board {
	return &board{
		width:  width,
		height: height,
		cells:  make([]boardCell, width*height),
	}
}

// clone makes a full copy. Cloning before each tentative placement is
// the dominant per-node cost, O(width*height) per branch.
func (b *board) clone() *board {
	cells := make([]boardCell, len(b.cells))
	copy(cells, b.cells)
	return &board{width: b.width, height: b.height, cells: cells}
}

// state is one search node: the working board plus the start cell
// chosen for each spec placed so far, in spec processing order.
type state struct {
	board  *board
	starts []int
}

func newState(width, height, specCount int) *state {
	return &state{
		board:  newBoard(width, height),
		starts: make([]int, 0, specCount),
	}
}

// clone copies the state for a branch point. The starts slice is
// copied at full capacity so appends never alias the parent.
func (s *state) clone() *state {
	starts := make([]int, len(s.starts), cap(s.starts))
	copy(starts, s.starts)
	return &state{board: s.board.clone(), starts: starts}
}
