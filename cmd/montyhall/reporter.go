package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/simulation"
)

// formatDuration keeps sub-second durations in plain milliseconds.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func printOdds(w io.Writer, odds game.Odds) {
	fmt.Fprintln(w, "="+strings.Repeat("=", 50))
	fmt.Fprintln(w, " EXACT ODDS")
	fmt.Fprintln(w, "="+strings.Repeat("=", 50))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Worlds counted: %d (3 car positions x 3 picks x 2 host options)\n\n", odds.TotalWorlds)
	for _, strat := range odds.Strategies {
		fmt.Fprintf(w, "  %s  wins %2d/%d  (%.1f%%)\n",
			padRight(string(strat), 6),
			odds.WinWorlds[strat], odds.TotalWorlds,
			odds.WinProbability(strat)*100)
	}
	fmt.Fprintln(w)
}

// printProportions renders the row-normalized outcome table.
func printProportions(w io.Writer, result *simulation.BatchResult) {
	const col = 6

	header := padRight("Strategy", 9)
	rule := strings.Repeat("-", 9)
	for _, o := range result.Table.Outcomes {
		header += "  " + padRight(string(o), col)
		rule += "  " + strings.Repeat("-", col)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)

	for _, strat := range result.Table.Strategies {
		row := padRight(string(strat), 9)
		for _, o := range result.Table.Outcomes {
			row += "  " + padRight(fmt.Sprintf("%.2f", result.Proportions[strat][o]), col)
		}
		fmt.Fprintln(w, row)
	}
}

func printSummary(w io.Writer, result *simulation.BatchResult) {
	printer := message.NewPrinter(language.English)

	fmt.Fprintln(w, "="+strings.Repeat("=", 50))
	fmt.Fprintln(w, " SIMULATION RESULTS")
	fmt.Fprintln(w, "="+strings.Repeat("=", 50))
	fmt.Fprintln(w)

	duration := time.Duration(result.DurationMs) * time.Millisecond
	fmt.Fprintf(w, "Games:     %s\n", printer.Sprintf("%d", result.Games))
	fmt.Fprintf(w, "Seed:      %d\n", result.Seed)
	fmt.Fprintf(w, "Duration:  %s\n", formatDuration(duration))
	fmt.Fprintf(w, "Run ID:    %s\n", result.RunID)
	fmt.Fprintln(w)

	printProportions(w, result)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		padRight("Strategy", 9), padRight("Wins", 7), padRight("Losses", 7),
		padRight("Win Rate", 8), "95% CI")
	for _, s := range result.Summaries {
		fmt.Fprintf(w, "%s  %s  %s  %s  [%.1f%%, %.1f%%]\n",
			padRight(string(s.Strategy), 9),
			padRight(printer.Sprintf("%d", s.Wins), 7),
			padRight(printer.Sprintf("%d", s.Losses), 7),
			padRight(fmt.Sprintf("%.1f%%", s.WinRate*100), 8),
			s.CI95Lo*100, s.CI95Hi*100)
	}
	fmt.Fprintln(w)

	adv := result.Advantage
	fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
	fmt.Fprintln(w, " SWITCH VS STAY")
	fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
	fmt.Fprintf(w, "Delta:            %+.4f\n", adv.Delta)
	fmt.Fprintf(w, "Ratio:            %.2fx\n", adv.Ratio)
	fmt.Fprintf(w, "Normalized Gain:  %.2f\n", adv.NormalizedGain)
	fmt.Fprintf(w, "Bootstrap 95%%:    [%+.4f, %+.4f]\n", adv.BootstrapCI.Lower, adv.BootstrapCI.Upper)
	fmt.Fprintf(w, "Significant:      %s\n", yesNo(adv.Significant))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
	fmt.Fprintf(w, " GOODNESS OF FIT (alpha %.2g)\n", result.Verdict.Alpha)
	fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
	for _, fit := range result.Verdict.Fits {
		icon := "✓"
		if !fit.Pass {
			icon = "✗"
		}
		fmt.Fprintf(w, "  %s %s  expected=%.4f  observed=%.4f  χ²=%.3f  p=%.4f\n",
			icon, padRight(string(fit.Strategy), 6),
			fit.ExpectedWinRate, fit.ObservedWinRate, fit.ChiSquare, fit.PValue)
	}
	fmt.Fprintln(w)

	if len(result.TailStats) > 0 {
		fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
		fmt.Fprintln(w, " CONVERGENCE")
		fmt.Fprintln(w, "-"+strings.Repeat("-", 50))
		for _, ts := range result.TailStats {
			fmt.Fprintf(w, "  %s  tail mean=%.4f  range=[%.4f, %.4f]  σ=%.4f\n",
				padRight(string(ts.Strategy), 6), ts.Mean, ts.Min, ts.Max, ts.StdDev)
		}
		fmt.Fprintln(w)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// FormatMarkdownReport formats a BatchResult as a markdown comment,
// suitable for pasting into an issue or PR.
func FormatMarkdownReport(result *simulation.BatchResult) string {
	var b strings.Builder
	printer := message.NewPrinter(language.English)

	duration := time.Duration(result.DurationMs) * time.Millisecond

	// Header with overall status
	b.WriteString("## 🎲 Monty Hall Simulation\n\n")

	statusIcon := "✅ Passed"
	if !result.Verdict.Pass {
		statusIcon = "❌ Failed"
	}
	b.WriteString(fmt.Sprintf("**Check:** %s | **Games:** %s | **Duration:** %s\n\n",
		statusIcon, printer.Sprintf("%d", result.Games), formatDuration(duration)))

	// Proportion table
	b.WriteString("| Strategy |")
	for _, o := range result.Table.Outcomes {
		b.WriteString(fmt.Sprintf(" %s |", o))
	}
	b.WriteString("\n|----------|")
	for range result.Table.Outcomes {
		b.WriteString("------|")
	}
	b.WriteString("\n")
	for _, strat := range result.Table.Strategies {
		b.WriteString(fmt.Sprintf("| %s |", strat))
		for _, o := range result.Table.Outcomes {
			b.WriteString(fmt.Sprintf(" %.2f |", result.Proportions[strat][o]))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("### Strategy Detail\n\n")
	b.WriteString("| Strategy | Wins | Losses | Win Rate | 95% CI |\n")
	b.WriteString("|----------|------|--------|----------|--------|\n")
	for _, s := range result.Summaries {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f%% | [%.1f%%, %.1f%%] |\n",
			s.Strategy,
			printer.Sprintf("%d", s.Wins),
			printer.Sprintf("%d", s.Losses),
			s.WinRate*100, s.CI95Lo*100, s.CI95Hi*100))
	}
	b.WriteString("\n")

	adv := result.Advantage
	b.WriteString("### Switch vs Stay\n\n")
	b.WriteString(fmt.Sprintf("- **Delta:** %+.4f\n", adv.Delta))
	b.WriteString(fmt.Sprintf("- **Ratio:** %.2fx\n", adv.Ratio))
	b.WriteString(fmt.Sprintf("- **Normalized Gain:** %.2f\n", adv.NormalizedGain))
	b.WriteString(fmt.Sprintf("- **Bootstrap 95%% CI:** [%+.4f, %+.4f]\n",
		adv.BootstrapCI.Lower, adv.BootstrapCI.Upper))
	b.WriteString(fmt.Sprintf("- **Significant:** %s\n\n", yesNo(adv.Significant)))

	b.WriteString(fmt.Sprintf("### Goodness of Fit (α=%.2g)\n\n", result.Verdict.Alpha))
	b.WriteString("| Strategy | Expected | Observed | χ² | p | Pass |\n")
	b.WriteString("|----------|----------|----------|----|---|------|\n")
	for _, fit := range result.Verdict.Fits {
		icon := "✅"
		if !fit.Pass {
			icon = "❌"
		}
		b.WriteString(fmt.Sprintf("| %s | %.4f | %.4f | %.3f | %.4f | %s |\n",
			fit.Strategy, fit.ExpectedWinRate, fit.ObservedWinRate,
			fit.ChiSquare, fit.PValue, icon))
	}
	b.WriteString("\n")

	// Convergence appears only when checkpoints were recorded
	if len(result.Checkpoints) > 0 {
		b.WriteString("### Convergence\n\n")
		b.WriteString("| Games | Stay | Switch |\n")
		b.WriteString("|-------|------|--------|\n")
		for _, cp := range result.Checkpoints {
			b.WriteString(fmt.Sprintf("| %s | %.4f | %.4f |\n",
				printer.Sprintf("%d", cp.Games), cp.StayWinRate, cp.SwitchWinRate))
		}
		b.WriteString("\n")
	}

	// Footer with metadata
	b.WriteString("---\n\n")
	b.WriteString(fmt.Sprintf("**Run:** %s | **Seed:** %d\n", result.RunID, result.Seed))

	return b.String()
}
