package solver

import (
	"time"

	"github.com/roach88/regrid/internal/clue"
)

// stopReason distinguishes the budget that aborted a search from a
// search that genuinely exhausted its space.
type stopReason int

const (
	stopNone stopReason = iota
	stopMaxStates
	stopTimeLimit
)

// timeCheckInterval is how many nodes pass between wall-clock checks.
// Checking every node would cost more than the check saves.
const timeCheckInterval = 100

// counters holds the mutable search tallies, threaded by pointer
// through the recursion rather than captured in closures.
type counters struct {
	explored            int
	candidatesTried     int
	completeAssignments int
	stop                stopReason
}

// searcher runs one bounded backtracking search over a fixed spec
// list. Not reusable across solves.
type searcher struct {
	width     int
	height    int
	specs     []clue.NumberSpec
	cands     [][]int
	maxStates int
	deadline  time.Time
	now       func() time.Time
	tally     counters
}

func newSearcher(width, height int, specs []clue.NumberSpec, maxStates int, deadline time.Time) *searcher {
	cands := make([][]int, len(specs))
	for i, spec := range specs {
		cands[i] = candidatesFor(spec, width, height)
	}
	return &searcher{
		width:     width,
		height:    height,
		specs:     specs,
		cands:     cands,
		maxStates: maxStates,
		deadline:  deadline,
		now:       time.Now,
	}
}

// search assigns a start cell to specs[specIndex] and recurses.
//
// Candidates are iterated in ascending index, skipping any at or below
// minCell: chosen start cells must be strictly increasing across
// ascending spec numbers, mirroring the row-major numbering scan.
// The first fully validated assignment wins; the search never
// enumerates further solutions.
func (s *searcher) search(st *state, specIndex, minCell int) (*state, bool) {
	s.tally.explored++
	if s.tally.explored > s.maxStates {
		s.tally.stop = stopMaxStates
		return nil, false
	}
	if s.tally.explored%timeCheckInterval == 0 && s.now().After(s.deadline) {
		s.tally.stop = stopTimeLimit
		return nil, false
	}

	if specIndex == len(s.specs) {
		s.tally.completeAssignments++
		// The monotonic-index invariant alone does not guarantee the
		// scanned numbering matches the input in every topology; only
		// a validated assignment counts as solved.
		if s.validate(st) {
			return st, true
		}
		return nil, false
	}

	spec := s.specs[specIndex]
	for _, cell := range s.cands[specIndex] {
		if cell <= minCell {
			continue
		}
		s.tally.candidatesTried++

		if !checkPlacement(st.board, spec, cell) {
			continue
		}

		next := st.clone()
		applyPlacement(next.board, spec, cell)
		next.starts = append(next.starts, cell)

		if !s.forwardCheck(next.board, specIndex+1, cell) {
			continue
		}

		if solved, ok := s.search(next, specIndex+1, cell); ok {
			return solved, true
		}
		if s.tally.stop != stopNone {
			return nil, false
		}
	}

	return nil, false
}

// forwardCheck confirms every subsequent spec still has at least one
// feasible candidate against the tentative board.
//
// lastMin is an optimistic, non-binding lower bound: the first
// feasible candidate found for a spec advances it, whether or not the
// search later chooses that cell. A spec with no candidate above the
// bound kills the branch before any recursion.
func (s *searcher) forwardCheck(b *board, from, lastMin int) bool {
	for i := from; i < len(s.specs); i++ {
		found := -1
		for _, cell := range s.cands[i] {
			if cell <= lastMin {
				continue
			}
			if checkPlacement(b, s.specs[i], cell) {
				found = cell
				break
			}
		}
		if found < 0 {
			return false
		}
		lastMin = found
	}
	return true
}
