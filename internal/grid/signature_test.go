package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSignature_Canonical verifies the signature is order-independent
// and uses the documented "{number}-{a|d}-{length}" encoding.
func TestSignature_Canonical(t *testing.T) {
	keys := []ClueKey{
		{Number: 2, Direction: Down, Length: 3},
		{Number: 1, Direction: Across, Length: 5},
		{Number: 1, Direction: Down, Length: 4},
	}
	shuffled := []ClueKey{keys[1], keys[2], keys[0]}

	sig := Signature(keys)
	assert.Equal(t, "1-a-5|1-d-4|2-d-3", sig)
	assert.Equal(t, sig, Signature(shuffled))
}

func TestSignature_Empty(t *testing.T) {
	assert.Equal(t, "", Signature(nil))
}

// TestLengthSignature_MatchesScan verifies the grid signature agrees
// with a signature built from the same triples by hand.
func TestLengthSignature_MatchesScan(t *testing.T) {
	g := mustParse(t, "N N N\nN W W\nN W W")

	want := Signature([]ClueKey{
		{Number: 1, Direction: Across, Length: 3},
		{Number: 1, Direction: Down, Length: 3},
		{Number: 2, Direction: Down, Length: 3},
		{Number: 3, Direction: Down, Length: 3},
		{Number: 4, Direction: Across, Length: 3},
		{Number: 5, Direction: Across, Length: 3},
	})
	assert.Equal(t, want, LengthSignature(g))
}

// TestLengthSignature_DistinguishesTopologies checks two different
// layouts with different word sets produce different signatures.
func TestLengthSignature_DistinguishesTopologies(t *testing.T) {
	a := mustParse(t, "N W B N W")
	b := mustParse(t, "N W W W W")
	assert.NotEqual(t, LengthSignature(a), LengthSignature(b))
}
