// Package solver reconstructs a crossword grid layout from numbered
// clue constraints.
//
// Given per-number length (and optionally letter) constraints for both
// directions, Solve searches for a cell layout whose independently
// re-derived numbering exactly reproduces the input. The search is a
// backtracking assignment of start cells to specs in ascending number
// order with forward checking, bounded by explicit state and time
// budgets, with a template-matching fallback on failure.
//
// ARCHITECTURE:
//
// Deterministic single-threaded search:
// A solve runs to completion or until a budget trips. Spec order and
// per-spec candidate order are fixed, and the first solution found is
// returned, so identical inputs with unhit budgets yield byte-identical
// grid strings on every run.
//
// Monotonic-index invariant:
// Start cells are assigned in strictly increasing cell-index order
// matching ascending spec number, mirroring the row-major scan that
// assigns numbers to a finished grid. The invariant prunes the search;
// it does not by itself guarantee correct numbering in all topologies,
// which is why every complete assignment is re-validated by scanning
// the built grid before it is accepted.
//
// Forward checking:
// Before recursing, every not-yet-placed spec must still have at least
// one feasible candidate against the tentative board, tracked through
// an optimistic, non-binding running lower bound. The first feasible
// candidate found advances the bound; it is not necessarily the cell
// the search will later choose. This exact heuristic is load-bearing
// for which solution is found first - do not replace it with a tighter
// one.
//
// Budgets are cooperative: explored states checked every node, wall
// clock every 100 nodes. There is no external cancellation channel.
package solver
