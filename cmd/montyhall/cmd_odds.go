package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbmoren2/montyhall/internal/game"
)

var oddsFormat string

func newOddsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Show the exact odds for both strategies",
		Long: `Show the exact win odds derived by enumerating every possible game.

Every car position, contestant pick, and host choice is counted as an
equally likely world, so the odds involve no randomness at all.`,
		Args: cobra.NoArgs,
		RunE: oddsCommandE,
	}

	cmd.Flags().StringVarP(&oddsFormat, "format", "f", "table", "Output format: table or json")

	return cmd
}

func oddsCommandE(cmd *cobra.Command, _ []string) error {
	odds := game.ExactOdds()

	switch oddsFormat {
	case "json":
		data, err := json.MarshalIndent(odds, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal odds: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "table":
		printOdds(cmd.OutOrStdout(), odds)
	default:
		return fmt.Errorf("unsupported format %q: must be table or json", oddsFormat)
	}

	return nil
}
