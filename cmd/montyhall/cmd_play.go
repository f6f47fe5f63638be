package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/rng"
)

var playSeed int64

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game step by step",
		Long: `Play a single game and narrate each step.

The car is hidden, a door is picked, the host opens a goat door, and both
strategies are resolved against the same doors so the game shows directly
what staying or switching would have done.`,
		Args: cobra.NoArgs,
		RunE: playCommandE,
	}

	cmd.Flags().Int64Var(&playSeed, "seed", 0, "Random seed (default: drawn from the OS)")

	return cmd
}

func playCommandE(cmd *cobra.Command, _ []string) error {
	seed := playSeed
	if !cmd.Flags().Changed("seed") {
		var err error
		seed, err = rng.NewSeed()
		if err != nil {
			return fmt.Errorf("seed game: %w", err)
		}
	}

	rec, err := game.Play(rng.NewSeeded(seed))
	if err != nil {
		return fmt.Errorf("play game: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Playing one game (seed %d)\n\n", seed)
	fmt.Fprintf(out, "The car hides behind door %d.\n", rec.Assignment.CarDoor())
	fmt.Fprintf(out, "You pick door %d.\n", rec.Pick)
	fmt.Fprintf(out, "The host opens door %d and shows a goat.\n\n", rec.Revealed)

	for _, strat := range game.Strategies() {
		res := rec.Result(strat)
		icon := "✗"
		if res.Outcome == game.OutcomeWin {
			icon = "✓"
		}
		fmt.Fprintf(out, "%s %-6s  final door %d  %s\n", icon, res.Strategy, res.Final, res.Outcome)
	}

	return nil
}
