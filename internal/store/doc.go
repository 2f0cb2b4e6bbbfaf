// Package store provides durable storage for the template grid
// library the solver falls back to.
//
// Templates are finished grids in the text wire format, stored in
// SQLite together with their outer dimensions and precomputed length
// signature, so fallback candidates for a puzzle shape can be fetched
// with one indexed query instead of re-scanning every stored grid.
//
// Writes are idempotent on the grid cells: storing the same grid twice
// keeps the first record.
package store
