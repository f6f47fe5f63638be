package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montyhall",
		Short: "Monty Hall - simulate and analyze the three-door problem",
		Long: `Monty Hall is a command-line tool for exploring the three-door problem.

It plays single games step by step, runs large batches that pit the stay
and switch strategies against the same doors, and checks the observed win
rates against the exact odds.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	}

	// Add subcommands
	cmd.AddCommand(newPlayCommand())
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newOddsCommand())
	cmd.AddCommand(newCompareCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
