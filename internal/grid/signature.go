package grid

import (
	"fmt"
	"sort"
	"strings"
)

// ClueKey is the (number, direction, length) triple that identifies a
// clue for signature purposes.
type ClueKey struct {
	Number    int
	Direction Direction
	Length    int
}

// Signature reduces a set of clue keys to a canonical string.
//
// Each key formats as "{number}-{a|d}-{length}"; the parts are sorted
// and joined with "|". The result is an opaque equality key: two clue
// sets are structurally equivalent iff their signatures are equal.
func Signature(keys []ClueKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d-%s-%d", k.Number, k.Direction.code(), k.Length)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// LengthSignature computes the canonical signature of a finished grid
// by re-scanning its clue metadata.
func LengthSignature(g Grid) string {
	metas := Scan(g)
	keys := make([]ClueKey, len(metas))
	for i, m := range metas {
		keys[i] = ClueKey{Number: m.Number, Direction: m.Direction, Length: m.Length}
	}
	return Signature(keys)
}
