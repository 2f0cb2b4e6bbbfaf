package grid

// ClueMeta is one numbered word recovered from a finished grid.
type ClueMeta struct {
	Number    int       `json:"number"`
	Direction Direction `json:"-"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Length    int       `json:"length"`
}

// Scan recovers the clue metadata from a finished grid using the
// standard crossword numbering convention: a letter cell starts a new
// across (down) word iff it has no letter immediately before it in
// that direction but does have one immediately after.
//
// Cells are visited in row-major order and numbers are assigned in
// that order. A cell that starts words in both directions gets one
// number and yields two ClueMeta entries (across first).
func Scan(g Grid) []ClueMeta {
	width, height := g.Width(), g.Height()
	var metas []ClueMeta
	number := 0

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if !g[r][c].IsLetter() {
				continue
			}

			startsAcross := (c == 0 || !g[r][c-1].IsLetter()) &&
				c+1 < width && g[r][c+1].IsLetter()
			startsDown := (r == 0 || !g[r-1][c].IsLetter()) &&
				r+1 < height && g[r+1][c].IsLetter()

			if !startsAcross && !startsDown {
				continue
			}
			number++

			if startsAcross {
				metas = append(metas, ClueMeta{
					Number:    number,
					Direction: Across,
					Row:       r,
					Col:       c,
					Length:    runLength(g, r, c, Across),
				})
			}
			if startsDown {
				metas = append(metas, ClueMeta{
					Number:    number,
					Direction: Down,
					Row:       r,
					Col:       c,
					Length:    runLength(g, r, c, Down),
				})
			}
		}
	}

	return metas
}

// runLength measures the contiguous letter run starting at (r, c).
func runLength(g Grid, r, c int, dir Direction) int {
	dr, dc := 0, 1
	if dir == Down {
		dr, dc = 1, 0
	}

	n := 0
	for r < g.Height() && c < g.Width() && g[r][c].IsLetter() {
		n++
		r += dr
		c += dc
	}
	return n
}
