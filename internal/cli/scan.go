package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/regrid/internal/grid"
)

// ScanResult is the scan command's output payload.
type ScanResult struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Clues     []ScannedClue `json:"clues"`
	Signature string        `json:"signature"`
}

// ScannedClue is one extracted clue with its direction spelled out.
type ScannedClue struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Length    int    `json:"length"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <grid.txt>",
		Short: "Extract clue metadata from a finished grid",
		Long: `Re-derive clue numbering from a grid in the text wire format.

Prints every numbered word with its position and measured length plus
the grid's canonical length signature.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScan(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	g, err := LoadGridFile(path)
	if err != nil {
		formatter.Error("E_LOAD", err.Error())
		return WrapExitError(ExitCommandError, "failed to load grid", err)
	}

	result := ScanResult{
		Width:     g.Width(),
		Height:    g.Height(),
		Signature: grid.LengthSignature(g),
	}
	for _, m := range grid.Scan(g) {
		result.Clues = append(result.Clues, ScannedClue{
			Number:    m.Number,
			Direction: m.Direction.String(),
			Row:       m.Row,
			Col:       m.Col,
			Length:    m.Length,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	var sb strings.Builder
	for _, c := range result.Clues {
		fmt.Fprintf(&sb, "%d %s (%d,%d) length %d\n", c.Number, c.Direction, c.Row, c.Col, c.Length)
	}
	fmt.Fprintf(&sb, "signature: %s", result.Signature)
	fmt.Fprintln(cmd.OutOrStdout(), sb.String())
	return nil
}
