package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/regrid/internal/store"
)

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage the fallback template library",
	}

	cmd.AddCommand(newTemplatesAddCommand(rootOpts))
	cmd.AddCommand(newTemplatesListCommand(rootOpts))

	return cmd
}

func newTemplatesAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <db> <grid.txt>",
		Short: "Store a finished grid as a fallback template",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesAdd(rootOpts, args[0], args[1], cmd)
		},
	}
}

func newTemplatesListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <db>",
		Short: "List stored templates",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesList(rootOpts, args[0], cmd)
		},
	}
}

func runTemplatesAdd(rootOpts *RootOptions, dbPath, gridPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	g, err := LoadGridFile(gridPath)
	if err != nil {
		formatter.Error("E_LOAD", err.Error())
		return WrapExitError(ExitCommandError, "failed to load grid", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to open template library", err)
	}
	defer closeStore(st)

	tpl, err := st.PutTemplate(cmd.Context(), g)
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to store template", err)
	}

	if rootOpts.Format == "json" {
		return formatter.Success(tpl)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "stored %s (%dx%d, signature %s)\n",
		tpl.ID, tpl.Width, tpl.Height, tpl.Signature)
	return nil
}

func runTemplatesList(rootOpts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to open template library", err)
	}
	defer closeStore(st)

	templates, err := st.ListTemplates(cmd.Context())
	if err != nil {
		formatter.Error("E_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to list templates", err)
	}

	if rootOpts.Format == "json" {
		return formatter.Success(templates)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no templates stored")
		return nil
	}
	var sb strings.Builder
	for i, tpl := range templates {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s  %dx%d  %s", tpl.ID, tpl.Width, tpl.Height, tpl.Signature)
	}
	fmt.Fprintln(cmd.OutOrStdout(), sb.String())
	return nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing template library", "error", err)
	}
}
