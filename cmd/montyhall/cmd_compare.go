package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/simulation"
)

var compareFormat string

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <result1.json> <result2.json> [result3.json ...]",
		Short: "Compare multiple saved simulation results",
		Long: `Compare results from multiple saved runs side by side.

Loads two or more result JSON files written by run --output and shows
per-strategy win rates, the switch advantage, and how each drifted
between runs.`,
		Args: cobra.MinimumNArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "Output format: table or json")

	return cmd
}

// runComparison lines up the headline numbers of several runs. Deltas
// compare the last run against the first.
type runComparison struct {
	Files          []string  `json:"files"`
	RunIDs         []string  `json:"run_ids"`
	Seeds          []int64   `json:"seeds"`
	Games          []int     `json:"games"`
	StayWinRates   []float64 `json:"stay_win_rates"`
	SwitchWinRates []float64 `json:"switch_win_rates"`
	Advantages     []float64 `json:"advantages"`
	StayDelta      float64   `json:"stay_win_rate_delta"`
	SwitchDelta    float64   `json:"switch_win_rate_delta"`
	AdvantageDelta float64   `json:"advantage_delta"`
	DurationsMs    []int64   `json:"durations_ms"`
	DurationDeltaM int64     `json:"duration_delta_ms"`
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	if compareFormat != "table" && compareFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", compareFormat)
	}

	results := make([]*simulation.BatchResult, 0, len(args))
	for _, path := range args {
		r, err := loadResultFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		results = append(results, r)
	}

	report := buildRunComparison(args, results)

	if compareFormat == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	printRunComparison(cmd.OutOrStdout(), report)
	return nil
}

func loadResultFile(path string) (*simulation.BatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result simulation.BatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func buildRunComparison(files []string, results []*simulation.BatchResult) *runComparison {
	report := &runComparison{
		Files: files,
	}

	for _, r := range results {
		report.RunIDs = append(report.RunIDs, r.RunID)
		report.Seeds = append(report.Seeds, r.Seed)
		report.Games = append(report.Games, r.Games)
		report.StayWinRates = append(report.StayWinRates, r.Summary(game.StrategyStay).WinRate)
		report.SwitchWinRates = append(report.SwitchWinRates, r.Summary(game.StrategySwitch).WinRate)
		report.Advantages = append(report.Advantages, r.Advantage.Delta)
		report.DurationsMs = append(report.DurationsMs, r.DurationMs)
	}

	n := len(results)
	report.StayDelta = report.StayWinRates[n-1] - report.StayWinRates[0]
	report.SwitchDelta = report.SwitchWinRates[n-1] - report.SwitchWinRates[0]
	report.AdvantageDelta = report.Advantages[n-1] - report.Advantages[0]
	report.DurationDeltaM = report.DurationsMs[n-1] - report.DurationsMs[0]

	return report
}

func printRunComparison(w io.Writer, r *runComparison) {
	// Header
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w, " COMPARISON REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w)

	// File listing
	for i, f := range r.Files {
		fmt.Fprintf(w, "  [%d] %s  (games: %d, seed: %d)\n", i+1, f, r.Games[i], r.Seeds[i])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintln(w, " WIN RATES")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	fmt.Fprintf(w, "  %-20s", "Metric")
	for i := range r.Files {
		fmt.Fprintf(w, "  [%d]      ", i+1)
	}
	fmt.Fprintf(w, "  Delta\n")

	fmt.Fprintf(w, "  %-20s", "Stay")
	for _, v := range r.StayWinRates {
		fmt.Fprintf(w, "  %-9.4f", v)
	}
	fmt.Fprintf(w, "  %+.4f\n", r.StayDelta)

	fmt.Fprintf(w, "  %-20s", "Switch")
	for _, v := range r.SwitchWinRates {
		fmt.Fprintf(w, "  %-9.4f", v)
	}
	fmt.Fprintf(w, "  %+.4f\n", r.SwitchDelta)

	fmt.Fprintf(w, "  %-20s", "Advantage")
	for _, v := range r.Advantages {
		fmt.Fprintf(w, "  %-9.4f", v)
	}
	fmt.Fprintf(w, "  %+.4f\n", r.AdvantageDelta)

	fmt.Fprintf(w, "  %-20s", "Duration (ms)")
	for _, d := range r.DurationsMs {
		fmt.Fprintf(w, "  %-9d", d)
	}
	fmt.Fprintf(w, "  %+d\n", r.DurationDeltaM)
	fmt.Fprintln(w)
}
