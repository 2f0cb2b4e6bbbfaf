// Package fallback matches a failed solve attempt against
// previously-known template grids.
//
// A template stands in for a direct solution only when exactly one
// candidate matches the input's outer dimensions and canonical length
// signature. Two or more matches are treated identically to zero:
// ambiguity is never silently resolved.
package fallback
