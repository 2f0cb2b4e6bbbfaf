package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/regrid/internal/clue"
	"github.com/roach88/regrid/internal/grid"
)

// Puzzle is a puzzle document as loaded from disk: dimensions plus raw
// across/down clue entries. Length resolution happens later, in the
// spec builder.
type Puzzle struct {
	Width  int          `yaml:"width" json:"width"`
	Height int          `yaml:"height" json:"height"`
	Across []clue.Entry `yaml:"across" json:"across"`
	Down   []clue.Entry `yaml:"down" json:"down"`
}

// LoadPuzzle reads and decodes a YAML puzzle document. Unknown fields
// are rejected so typos surface as load errors, not silent defaults.
func LoadPuzzle(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}

	var puzzle Puzzle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&puzzle); err != nil {
		return nil, fmt.Errorf("decode puzzle %s: %w", path, err)
	}

	return &puzzle, nil
}

// LoadGridFile reads a grid in the text wire format. A single trailing
// newline is tolerated since most editors add one; the wire format
// itself carries none.
func LoadGridFile(path string) (grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}
	return g, nil
}
