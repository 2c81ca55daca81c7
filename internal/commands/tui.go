package commands

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pocketbank-dev/pocketbank/internal/logging"
	"github.com/pocketbank-dev/pocketbank/internal/session"
	"github.com/pocketbank-dev/pocketbank/internal/tui"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the banking app in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file (overrides config; default discards)")

	return cmd
}

func runTUI(cmd *cobra.Command, opts *globalOptions, logFile string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	// The program owns the terminal, so logs go to a file or nowhere.
	logger := logging.Discard()
	if cfg.Log.File != "" {
		fileLogger, closeLog, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = fileLogger
	}

	e, err := newEnvWithLogger(cfg, logger)
	if err != nil {
		return err
	}

	sess := session.New(e.state, cfg.Transfer.DefaultAmount)
	model := tui.New(sess, tui.Options{Logger: logger.With(slog.String("component", "tui"))})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	logger.Info("session ended", "events", len(e.state.Activity()))
	return nil
}
