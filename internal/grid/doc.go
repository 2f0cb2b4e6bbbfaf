// Package grid provides the crossword grid cell model, the text wire
// format, the clue metadata extractor, and the canonical length
// signature encoding.
//
// This package is the foundational layer: every other internal package
// imports grid; grid imports nothing internal. This keeps the cell
// conventions and the numbering scan in exactly one place.
//
// Key design constraints:
//   - The wire format is byte-reproducible: rows joined by "\n", cells
//     joined by a single space, each cell exactly one of 'N', 'W', 'B'.
//     Other parts of the system consume this format verbatim.
//   - Scan implements the standard crossword numbering convention and
//     is the single source of truth for numbering. The solver's
//     validator trusts Scan over its own bookkeeping.
//   - Signatures are opaque equality keys, never display strings.
package grid
