package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pocketbank-dev/pocketbank/internal/export"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a CSV snapshot of the bank state",
	}
	exportCmd.AddCommand(newExportSubcommand(opts, "accounts", "Export accounts as CSV",
		func(w io.Writer, e *env) error { return export.WriteAccounts(w, e.state.Accounts()) }))
	exportCmd.AddCommand(newExportSubcommand(opts, "activity", "Export the activity timeline as CSV, newest first",
		func(w io.Writer, e *env) error { return export.WriteActivity(w, e.state.Activity()) }))
	return exportCmd
}

func newExportSubcommand(opts *globalOptions, use, short string, write func(io.Writer, *env) error) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.newEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return write(cmd.OutOrStdout(), e)
			}
			if err := export.ToFile(out, func(w io.Writer) error { return write(w, e) }); err != nil {
				return fmt.Errorf("exporting %s: %w", use, err)
			}
			e.logger.Info("export written", "kind", use, "path", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
