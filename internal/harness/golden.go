package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a solved scenario and pins its grid against the
// golden file testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
//
// Only solved scenarios have a grid to pin; failure scenarios assert
// through their expectation instead.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if !result.Solve.Success {
		return result, nil
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(result.Solve.GridString))

	return result, nil
}
