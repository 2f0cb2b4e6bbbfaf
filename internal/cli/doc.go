// Package cli implements the regrid command line interface.
//
// Commands:
//   - solve: reconstruct a grid from a puzzle document
//   - scan: extract clue metadata from a finished grid
//   - validate: check a puzzle document against the CUE schema
//   - templates: manage the fallback template library
//
// Output goes through OutputFormatter in text or JSON; verbose
// diagnostics always go to stderr so JSON output stays parseable.
// Exit codes: 0 success, 1 solver/validation failure, 2 command error.
package cli
