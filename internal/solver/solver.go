package solver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/regrid/internal/clue"
	"github.com/roach88/regrid/internal/fallback"
	"github.com/roach88/regrid/internal/grid"
)

// Default resource budgets for a solve attempt.
const (
	DefaultMaxStates = 500000
	DefaultMaxMillis = 4000
)

// Options tunes a solve attempt. Zero values take the defaults.
type Options struct {
	// MaxStates bounds the number of search nodes visited.
	MaxStates int

	// MaxMillis bounds wall-clock time. Outcomes that hit this limit
	// are not reproducible across different hardware or load.
	MaxMillis int

	// Templates are previously-known grids consulted only after the
	// search fails. A template is returned iff exactly one matches the
	// input's dimensions and length signature.
	Templates []grid.Grid

	// IncludeDiagnostics appends search counters to failure messages.
	// Off by default to keep bulk-processing output terse.
	IncludeDiagnostics bool
}

func (o Options) withDefaults() Options {
	if o.MaxStates <= 0 {
		o.MaxStates = DefaultMaxStates
	}
	if o.MaxMillis <= 0 {
		o.MaxMillis = DefaultMaxMillis
	}
	return o
}

// Result is the outcome of a solve attempt. Search failures are
// results, not errors: Success false with a reason in Message.
type Result struct {
	Success        bool      `json:"success"`
	Grid           grid.Grid `json:"grid,omitempty"`
	GridString     string    `json:"grid_string,omitempty"`
	Message        string    `json:"message,omitempty"`
	ExploredStates int       `json:"explored_states"`
}

// Solve reconstructs a grid layout for the given clue entries.
//
// The returned error is non-nil only for input problems (*clue.
// InputError): bad dimensions, empty clues, unresolvable lengths.
// Every search outcome, including budget exhaustion and proven
// unsatisfiability, comes back as a structured Result.
//
// With identical inputs and budgets large enough that no limit is hit,
// Solve is fully deterministic and returns the same first-found
// solution every run.
func Solve(width, height int, across, down []clue.Entry, opts Options) (Result, error) {
	if width <= 0 {
		return Result{}, &clue.InputError{Field: "width", Message: "must be positive"}
	}
	if height <= 0 {
		return Result{}, &clue.InputError{Field: "height", Message: "must be positive"}
	}

	specs, err := clue.Build(across, down)
	if err != nil {
		return Result{}, err
	}

	opts = opts.withDefaults()
	deadline := time.Now().Add(time.Duration(opts.MaxMillis) * time.Millisecond)

	slog.Debug("solve starting",
		"width", width,
		"height", height,
		"specs", len(specs),
		"max_states", opts.MaxStates,
		"max_millis", opts.MaxMillis,
	)

	s := newSearcher(width, height, specs, opts.MaxStates, deadline)
	solved, ok := s.search(newState(width, height, len(specs)), 0, -1)

	if ok {
		g := buildGrid(solved, width, height)
		slog.Debug("solve succeeded",
			"explored", s.tally.explored,
			"candidates_tried", s.tally.candidatesTried,
		)
		return Result{
			Success:        true,
			Grid:           g,
			GridString:     g.String(),
			ExploredStates: s.tally.explored,
		}, nil
	}

	slog.Debug("search failed",
		"reason", failureReason(s.tally.stop),
		"explored", s.tally.explored,
	)

	// Fallback: a uniquely signature-matching known template stands in
	// for a direct solution, whatever the failure reason was.
	sig := clue.SpecSignature(specs)
	if tpl, matched := fallback.Match(sig, width, height, opts.Templates); matched {
		return Result{
			Success:        true,
			Grid:           tpl,
			GridString:     tpl.String(),
			Message:        "solved by template fallback: input signature matched a known grid",
			ExploredStates: s.tally.explored,
		}, nil
	}

	return Result{
		Success:        false,
		Message:        failureMessage(s.tally, opts),
		ExploredStates: s.tally.explored,
	}, nil
}

func failureReason(stop stopReason) string {
	switch stop {
	case stopMaxStates:
		return "max_states"
	case stopTimeLimit:
		return "time_limit"
	default:
		return "search_exhausted"
	}
}

// failureMessage explains which of the three failure reasons applied.
// The budget reasons are inconclusive and worth retrying with larger
// budgets; an exhausted search is a proof of unsatisfiability.
func failureMessage(tally counters, opts Options) string {
	var msg string
	switch tally.stop {
	case stopMaxStates:
		msg = fmt.Sprintf("state budget exceeded (max_states): visited %d states", tally.explored)
	case stopTimeLimit:
		msg = fmt.Sprintf("time budget exceeded (time_limit): %dms elapsed", opts.MaxMillis)
	default:
		msg = "search exhausted: no grid layout satisfies the given clues"
	}

	if opts.IncludeDiagnostics {
		msg += fmt.Sprintf(" [explored=%d candidates_tried=%d complete_assignments=%d]",
			tally.explored, tally.candidatesTried, tally.completeAssignments)
	}
	return msg
}
