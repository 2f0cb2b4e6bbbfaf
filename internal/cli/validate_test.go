package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePuzzleDocument_Valid(t *testing.T) {
	doc := []byte(`
width: 5
height: 1
across:
  - number: 1
    answer: AB
down: []
`)

	result := validatePuzzleDocument("puzzle.yaml", doc)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestValidatePuzzleDocument_OptionalDirections(t *testing.T) {
	doc := []byte("width: 5\nheight: 1\n")

	result := validatePuzzleDocument("puzzle.yaml", doc)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}

func TestValidatePuzzleDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero width", "width: 0\nheight: 1\n"},
		{"missing height", "width: 5\n"},
		{"bad clue number", "width: 5\nheight: 1\nacross:\n  - number: 0\n    length: 2\n"},
		{"bad length", "width: 5\nheight: 1\nacross:\n  - number: 1\n    length: -2\n"},
		{"wrong type", "width: five\nheight: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePuzzleDocument("puzzle.yaml", []byte(tt.doc))
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)
		})
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeFile(t, "puzzle.yaml", "width: 5\nheight: 5\nacross:\n  - number: 1\n    length: 3\n")

	stdout, _, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeFile(t, "puzzle.yaml", "width: 0\nheight: 5\n")

	stdout, _, err := runCLI(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "invalid")
}

func TestValidatePuzzleDocument_NotYAML(t *testing.T) {
	result := validatePuzzleDocument("puzzle.yaml", []byte(":\n  - ::bad"))
	assert.False(t, result.Valid)
}
