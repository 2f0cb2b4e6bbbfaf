package clue

import (
	"sort"

	"github.com/roach88/regrid/internal/grid"
)

// Entry is one raw clue as supplied by the caller. Any of answer,
// clue text, or explicit length may be present.
type Entry struct {
	Number int    `json:"number" yaml:"number"`
	Answer string `json:"answer,omitempty" yaml:"answer,omitempty"`
	Clue   string `json:"clue,omitempty" yaml:"clue,omitempty"`
	Length int    `json:"length,omitempty" yaml:"length,omitempty"`
}

// DirectionSpec is the constraint for one direction of a numbered clue.
type DirectionSpec struct {
	// Length is the word length in cells. Always > 0.
	Length int

	// Letters fixes the word's characters when known. Either empty or
	// exactly Length runes.
	Letters string
}

// NumberSpec is the merged constraint set for one clue number. At
// least one direction is present. A number with both components uses
// the same start cell for both, per the crossword convention.
type NumberSpec struct {
	Number int
	Across *DirectionSpec
	Down   *DirectionSpec
}

// Build resolves raw entries into merged specs, sorted ascending by
// number. Entries sharing a number across directions merge into one
// NumberSpec. Duplicate entries within one direction are tolerated
// only when they resolve identically.
//
// Fails with *InputError when a length cannot be resolved, when a
// duplicate conflicts, or when the combined list is empty.
func Build(across, down []Entry) ([]NumberSpec, error) {
	byNumber := make(map[int]*NumberSpec)

	add := func(e Entry, dir grid.Direction) error {
		if e.Number <= 0 {
			return &InputError{Field: "number", Message: "clue number must be positive"}
		}

		ds, err := resolveDirection(e)
		if err != nil {
			return err
		}

		spec, ok := byNumber[e.Number]
		if !ok {
			spec = &NumberSpec{Number: e.Number}
			byNumber[e.Number] = spec
		}

		slot := &spec.Across
		if dir == grid.Down {
			slot = &spec.Down
		}
		if *slot != nil {
			if (*slot).Length != ds.Length || (*slot).Letters != ds.Letters {
				return &InputError{
					Number:  e.Number,
					Message: "conflicting duplicate entries in the same direction",
				}
			}
			return nil
		}
		*slot = ds
		return nil
	}

	for _, e := range across {
		if err := add(e, grid.Across); err != nil {
			return nil, err
		}
	}
	for _, e := range down {
		if err := add(e, grid.Down); err != nil {
			return nil, err
		}
	}

	if len(byNumber) == 0 {
		return nil, &InputError{Field: "clues", Message: "no across or down entries supplied"}
	}

	specs := make([]NumberSpec, 0, len(byNumber))
	for _, spec := range byNumber {
		specs = append(specs, *spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Number < specs[j].Number })
	return specs, nil
}

// resolveDirection builds the DirectionSpec for one entry, applying
// the length resolution priority. The normalized answer fixes letters
// only when its length agrees with the resolved length.
func resolveDirection(e Entry) (*DirectionSpec, error) {
	length := resolveLength(e)
	if length <= 0 {
		return nil, &InputError{
			Number:  e.Number,
			Message: "length not resolvable from length field, answer, or clue enumeration",
		}
	}

	letters := NormalizeAnswer(e.Answer)
	if len([]rune(letters)) != length {
		letters = ""
	}

	return &DirectionSpec{Length: length, Letters: letters}, nil
}

// SpecSignature reduces a spec list to the canonical signature shared
// with grid.LengthSignature, so solver input and scanned grids compare
// through the same opaque key.
func SpecSignature(specs []NumberSpec) string {
	var keys []grid.ClueKey
	for _, s := range specs {
		if s.Across != nil {
			keys = append(keys, grid.ClueKey{Number: s.Number, Direction: grid.Across, Length: s.Across.Length})
		}
		if s.Down != nil {
			keys = append(keys, grid.ClueKey{Number: s.Number, Direction: grid.Down, Length: s.Down.Length})
		}
	}
	return grid.Signature(keys)
}
