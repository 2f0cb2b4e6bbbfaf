package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/regrid/internal/grid"
	"github.com/roach88/regrid/internal/solver"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario *Scenario
	Solve    solver.Result

	// Failures lists every way the outcome missed the expectation.
	// Empty for a passing scenario.
	Failures []string
}

// Passed reports whether the scenario's expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run solves a scenario's puzzle and checks the result against its
// expectation. The returned error covers setup problems only (bad
// template grids, invalid clue input); a missed expectation comes back
// as a Result with Failures.
func Run(scenario *Scenario) (*Result, error) {
	templates := make([]grid.Grid, 0, len(scenario.Templates))
	for i, text := range scenario.Templates {
		tpl, err := grid.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		templates = append(templates, tpl)
	}

	res, err := solver.Solve(scenario.Width, scenario.Height, scenario.Across, scenario.Down, solver.Options{
		MaxStates: scenario.MaxStates,
		MaxMillis: scenario.MaxMillis,
		Templates: templates,
	})
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	result := &Result{Scenario: scenario, Solve: res}
	checkExpectation(result)
	return result, nil
}

func checkExpectation(r *Result) {
	expect := r.Scenario.Expect
	res := r.Solve

	switch expect.Outcome {
	case OutcomeSolved:
		if !res.Success {
			r.fail("expected a solved grid, got failure: %s", res.Message)
			return
		}
		if expect.Grid != "" && res.GridString != expect.Grid {
			r.fail("solved grid mismatch:\nwant:\n%s\ngot:\n%s", expect.Grid, res.GridString)
		}
	case OutcomeExhausted:
		if res.Success {
			r.fail("expected search exhaustion, got a solved grid")
			return
		}
		if !strings.Contains(res.Message, "search exhausted") {
			r.fail("expected exhaustion message, got: %s", res.Message)
		}
	case OutcomeBudget:
		if res.Success {
			r.fail("expected a budget failure, got a solved grid")
			return
		}
		if !strings.Contains(res.Message, "budget exceeded") {
			r.fail("expected budget message, got: %s", res.Message)
		}
	}

	if expect.MessageContains != "" && !strings.Contains(res.Message, expect.MessageContains) {
		r.fail("message %q does not contain %q", res.Message, expect.MessageContains)
	}
}

func (r *Result) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}
