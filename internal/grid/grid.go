package grid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction identifies the orientation of a clue's word.
type Direction int

const (
	// Across runs left to right within a row.
	Across Direction = iota
	// Down runs top to bottom within a column.
	Down
)

// String returns the human-readable direction name.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// code returns the single-letter direction code used in signatures.
func (d Direction) code() string {
	if d == Down {
		return "d"
	}
	return "a"
}

// Cell is one cell of a rendered crossword grid.
type Cell byte

const (
	// Block is a blocked (black) cell.
	Block Cell = 'B'
	// White is a plain letter cell.
	White Cell = 'W'
	// Numbered is a letter cell that starts at least one word.
	Numbered Cell = 'N'
)

// IsLetter reports whether the cell holds a letter (plain or numbered).
func (c Cell) IsLetter() bool {
	return c == White || c == Numbered
}

// Grid is a rectangular crossword cell layout, row-major.
//
// All rows have the same length. The zero value is an empty grid with
// zero width and height.
type Grid [][]Cell

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String renders the grid in the wire format: rows joined by "\n",
// cells within a row joined by a single space. The output is
// byte-reproducible for identical grids.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte(cell))
		}
	}
	return sb.String()
}

// MarshalJSON renders the grid as an array of wire-format rows, e.g.
// ["N W B", "W W B"], rather than nested byte arrays.
func (g Grid) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	rows := make([]string, len(g))
	for r, row := range g {
		parts := make([]string, len(row))
		for c, cell := range row {
			parts[c] = string(byte(cell))
		}
		rows[r] = strings.Join(parts, " ")
	}
	return json.Marshal(rows)
}

// UnmarshalJSON parses the row-array form produced by MarshalJSON.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if rows == nil {
		*g = nil
		return nil
	}
	parsed, err := Parse(strings.Join(rows, "\n"))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.Width() != other.Width() || g.Height() != other.Height() {
		return false
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Parse decodes a grid from the wire format.
//
// Every row must have the same number of cells and every cell must be
// exactly one of "N", "W", "B". Leading/trailing blank lines are not
// tolerated; the input must be exactly what String produces.
func Parse(s string) (Grid, error) {
	if s == "" {
		return nil, fmt.Errorf("parse grid: empty input")
	}

	rows := strings.Split(s, "\n")
	g := make(Grid, len(rows))
	width := -1

	for r, row := range rows {
		cols := strings.Split(row, " ")
		if width == -1 {
			width = len(cols)
		} else if len(cols) != width {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", r, len(cols), width)
		}

		g[r] = make([]Cell, len(cols))
		for c, tok := range cols {
			if len(tok) != 1 {
				return nil, fmt.Errorf("parse grid: row %d cell %d: invalid token %q", r, c, tok)
			}
			switch Cell(tok[0]) {
			case Block, White, Numbered:
				g[r][c] = Cell(tok[0])
			default:
				return nil, fmt.Errorf("parse grid: row %d cell %d: unknown cell code %q", r, c, tok)
			}
		}
	}

	return g, nil
}
