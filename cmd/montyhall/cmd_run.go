package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bbmoren2/montyhall/internal/reporting"
	"github.com/bbmoren2/montyhall/internal/simulation"
	"github.com/bbmoren2/montyhall/internal/spinner"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

var (
	games       int
	runSeed     int64
	outputPath  string
	format      string
	check       bool
	alpha       float64
	checkpoints int
	interpret   bool
	junitPath   string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of games and compare both strategies",
		Long: `Run a batch of games and tabulate how the stay and switch strategies fared.

Every game resolves both strategies against the same doors, so the batch
is a paired comparison rather than two separate experiments. With --check
the observed win rates are tested against the exact odds and a failed
check exits with code 1.`,
		Args: cobra.NoArgs,
		RunE: runCommandE,
	}

	cmd.Flags().IntVarP(&games, "games", "n", simulation.DefaultGames, "Number of games to play")
	cmd.Flags().Int64Var(&runSeed, "seed", 0, "Random seed (default: drawn from the OS)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file for results")
	cmd.Flags().StringVar(&format, "format", "default", "Output format: default, markdown")
	cmd.Flags().BoolVar(&check, "check", false, "Fail when observed win rates drift from the exact odds")
	cmd.Flags().Float64Var(&alpha, "alpha", statistics.DefaultAlpha, "Significance level for --check")
	cmd.Flags().IntVar(&checkpoints, "checkpoints", 0, "Number of convergence checkpoints to record (0 disables)")
	cmd.Flags().BoolVar(&interpret, "interpret", false, "Print a plain-language interpretation of the results")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Output JUnit XML file for the goodness-of-fit checks")

	return cmd
}

func runCommandE(cmd *cobra.Command, _ []string) error {
	opts := []simulation.RunnerOption{
		simulation.WithCheckpoints(checkpoints),
		simulation.WithAlpha(alpha),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, simulation.WithSeed(runSeed))
	}
	runner := simulation.NewRunner(opts...)

	// Spinner goes to stderr so piped stdout stays clean.
	var stopSpinner func()
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		stopSpinner = spinner.Start(cmd.ErrOrStderr(), games)
	}
	result, err := runner.Run(games)
	if stopSpinner != nil {
		stopSpinner()
	}
	if err != nil {
		return err
	}

	switch format {
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), FormatMarkdownReport(result))
	case "default":
		printSummary(cmd.OutOrStdout(), result)

		if interpret {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), reporting.FormatSummaryReport(result))
		}
	default:
		return fmt.Errorf("unknown output format: %s (supported: default, markdown)", format)
	}

	if outputPath != "" {
		if err := saveResult(result, outputPath); err != nil {
			return fmt.Errorf("failed to save output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nResults saved to: %s\n", outputPath)
	}

	if junitPath != "" {
		if err := reporting.WriteJUnitXML(result, junitPath); err != nil {
			return fmt.Errorf("failed to write JUnit report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "JUnit report saved to: %s\n", junitPath)
	}

	if check && !result.Verdict.Pass {
		return &CheckFailureError{
			Message: fmt.Sprintf("observed win rates failed the goodness-of-fit check at alpha %.2g", result.Verdict.Alpha),
		}
	}

	return nil
}

func saveResult(result *simulation.BatchResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
