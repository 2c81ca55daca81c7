package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/format"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

func newAccountsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List accounts and the total available balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.newEnv(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), e.state.Accounts())
		},
	}
}

func printAccounts(w io.Writer, accounts []model.Account) error {
	right := lipgloss.NewStyle().Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "TYPE", "BALANCE", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 3 && row != table.HeaderRow {
				return right
			}
			return lipgloss.NewStyle()
		})
	for _, a := range accounts {
		t.Row(a.ID, a.Name, string(a.Type), format.Currency(a.Balance), a.Subtitle)
	}

	_, err := fmt.Fprintf(w, "%s\nTotal available: %s\n", t.Render(), format.Currency(derived.LiquidBalance(accounts)))
	return err
}
