package commands

import (
	"github.com/spf13/cobra"

	"github.com/pocketbank-dev/pocketbank/internal/config"
	"github.com/pocketbank-dev/pocketbank/internal/version"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pocketbank",
		Short:   "Mobile banking demo for the terminal",
		Version: version.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	flags.StringVar(&opts.fixturesPath, "fixtures", "", "YAML file replacing the built-in demo data")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides config)")

	rootCmd.AddCommand(newTUICommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newAccountsCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
