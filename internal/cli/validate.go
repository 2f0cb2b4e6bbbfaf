package cli

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/spf13/cobra"
)

//go:embed schema.cue
var puzzleSchemaCUE string

// ValidationIssue is one schema violation in a puzzle document.
type ValidationIssue struct {
	Position string `json:"position,omitempty"`
	Message  string `json:"message"`
}

// ValidationResult holds validation results for one document.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <puzzle.yaml>",
		Short: "Validate a puzzle document against the schema",
		Long: `Validate a YAML puzzle document against the embedded CUE schema.

Checks structure and value constraints (positive dimensions, positive
clue numbers and lengths) without running the solver.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error("E_READ", err.Error())
		return WrapExitError(ExitCommandError, "failed to read puzzle", err)
	}

	result := validatePuzzleDocument(path, data)
	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
		if !result.Valid {
			return NewExitError(ExitFailure, "puzzle document is invalid")
		}
		return nil
	}

	if !result.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		for _, issue := range result.Issues {
			if issue.Position != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Position, issue.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue.Message)
			}
		}
		return NewExitError(ExitFailure, "puzzle document is invalid")
	}

	formatter.VerboseLog("schema check passed for %s", path)
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

// validatePuzzleDocument unifies the YAML document with the #Puzzle
// schema definition and collects every violation.
func validatePuzzleDocument(path string, data []byte) ValidationResult {
	ctx := cuecontext.New()

	schema := ctx.CompileString(puzzleSchemaCUE, cue.Filename("schema.cue"))
	def := schema.LookupPath(cue.ParsePath("#Puzzle"))

	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return ValidationResult{Issues: []ValidationIssue{{Message: err.Error()}}}
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return ValidationResult{Issues: []ValidationIssue{{Message: err.Error()}}}
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var issues []ValidationIssue
		for _, e := range cueerrors.Errors(err) {
			issue := ValidationIssue{Message: e.Error()}
			if pos := e.Position(); pos.IsValid() {
				issue.Position = fmt.Sprintf("%s:%d:%d", pos.Filename(), pos.Line(), pos.Column())
			}
			issues = append(issues, issue)
		}
		return ValidationResult{Issues: issues}
	}

	return ValidationResult{Valid: true}
}
