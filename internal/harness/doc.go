// Package harness runs declarative solver scenarios.
//
// A scenario is a YAML file pairing a puzzle (dimensions, clues,
// budgets, optional fallback templates) with the expected outcome:
// solved with a specific grid, search exhausted, or a budget hit.
// Scenarios keep end-to-end expectations out of Go table literals so
// new cases need no code changes, and golden files pin the exact grid
// a solved scenario must reproduce byte for byte.
package harness
