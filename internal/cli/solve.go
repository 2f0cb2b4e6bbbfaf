package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/regrid/internal/clue"
	"github.com/roach88/regrid/internal/grid"
	"github.com/roach88/regrid/internal/solver"
	"github.com/roach88/regrid/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	MaxStates   int
	MaxMillis   int
	TemplatesDB string
	Diagnostics bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <puzzle.yaml>",
		Short: "Reconstruct a grid layout from a puzzle document",
		Long: `Reconstruct a crossword grid layout from numbered clues.

Prints the solved grid in the text wire format (or the full result as
JSON with --format json). On failure the message explains whether the
search was exhausted or a budget was hit; budget failures are worth
retrying with larger --max-states / --max-millis.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxStates, "max-states", solver.DefaultMaxStates, "search state budget")
	cmd.Flags().IntVar(&opts.MaxMillis, "max-millis", solver.DefaultMaxMillis, "wall-clock budget in milliseconds")
	cmd.Flags().StringVar(&opts.TemplatesDB, "templates", "", "template library database for fallback matching")
	cmd.Flags().BoolVar(&opts.Diagnostics, "diagnostics", false, "include search counters in failure messages")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	puzzle, err := LoadPuzzle(path)
	if err != nil {
		formatter.Error("E_LOAD", err.Error())
		return WrapExitError(ExitCommandError, "failed to load puzzle", err)
	}
	slog.Debug("puzzle loaded",
		"path", path,
		"width", puzzle.Width,
		"height", puzzle.Height,
		"across", len(puzzle.Across),
		"down", len(puzzle.Down),
	)

	templates, err := loadTemplates(cmd, opts.TemplatesDB, puzzle.Width, puzzle.Height)
	if err != nil {
		formatter.Error("E_TEMPLATES", err.Error())
		return WrapExitError(ExitCommandError, "failed to load templates", err)
	}

	result, err := solver.Solve(puzzle.Width, puzzle.Height, puzzle.Across, puzzle.Down, solver.Options{
		MaxStates:          opts.MaxStates,
		MaxMillis:          opts.MaxMillis,
		Templates:          templates,
		IncludeDiagnostics: opts.Diagnostics,
	})
	if err != nil {
		if clue.IsInputError(err) {
			formatter.Error("E_INPUT", err.Error())
			return WrapExitError(ExitCommandError, "invalid puzzle", err)
		}
		return err
	}

	if !result.Success {
		slog.Info("solve failed", "explored_states", result.ExploredStates)
		formatter.Error("E_UNSOLVED", result.Message)
		return NewExitError(ExitFailure, result.Message)
	}

	slog.Info("solve succeeded", "explored_states", result.ExploredStates)
	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}
	if result.Message != "" {
		formatter.VerboseLog("%s", result.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.GridString)
	return nil
}

// loadTemplates fetches shape-matching fallback candidates from the
// template library, when one was supplied.
func loadTemplates(cmd *cobra.Command, dbPath string, width, height int) ([]grid.Grid, error) {
	if dbPath == "" {
		return nil, nil
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing template library", "error", closeErr)
		}
	}()

	templates, err := st.FindByShape(cmd.Context(), width, height)
	if err != nil {
		return nil, err
	}
	slog.Debug("templates loaded", "path", dbPath, "count", len(templates))
	return store.Grids(templates)
}
