package clue

import (
	"errors"
	"fmt"
)

// InputError reports invalid solver input: unusable dimensions, an
// empty spec list, or an entry whose length cannot be resolved.
//
// It is raised at spec-build time and never retried. All later failure
// modes (exhausted search, exceeded budgets) are structured results,
// not errors.
type InputError struct {
	// Field names the offending input field ("width", "length", ...).
	Field string

	// Number is the clue number involved, 0 when not applicable.
	Number int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Number > 0 {
		return fmt.Sprintf("invalid input: clue %d: %s", e.Number, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// IsInputError returns true if the error is an InputError.
// Uses errors.As to handle wrapped errors.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
