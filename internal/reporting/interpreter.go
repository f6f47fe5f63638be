// Package reporting turns batch results into artifacts for people and
// CI systems: a plain-language interpretation of what the numbers mean,
// and a JUnit XML rendering of the goodness-of-fit checks.
package reporting

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/simulation"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

// InterpretWinRate returns a plain-language comparison of an observed
// win rate against the exact probability for that strategy.
func InterpretWinRate(observed, expected float64) string {
	diff := math.Abs(observed - expected)
	obs := observed * 100
	exp := expected * 100
	switch {
	case diff <= 0.02:
		return fmt.Sprintf("won %.1f%% of games, close to the expected %.1f%%", obs, exp)
	case diff <= 0.05:
		return fmt.Sprintf("won %.1f%% of games, within noise of the expected %.1f%%", obs, exp)
	default:
		return fmt.Sprintf("won %.1f%% of games, well off the expected %.1f%%. Play more games or check the random source", obs, exp)
	}
}

// InterpretAdvantage explains the switch-over-stay edge and whether it
// cleared sampling noise.
func InterpretAdvantage(adv statistics.Advantage) string {
	if adv.Delta <= 0 {
		return fmt.Sprintf("Switching showed no advantage in this batch (%+.1f points). Small batches can land anywhere; play more games.", adv.Delta*100)
	}

	s := fmt.Sprintf("Switching won %.2fx as often as staying, a %+.1f point advantage.", adv.Ratio, adv.Delta*100)
	if adv.Significant {
		s += fmt.Sprintf(" The bootstrap interval [%+.3f, %+.3f] excludes zero, so the advantage is not sampling noise.",
			adv.BootstrapCI.Lower, adv.BootstrapCI.Upper)
	} else {
		s += fmt.Sprintf(" The bootstrap interval [%+.3f, %+.3f] still includes zero; play more games to separate the strategies.",
			adv.BootstrapCI.Lower, adv.BootstrapCI.Upper)
	}
	return s
}

// InterpretGain explains Hake's normalized gain against its theoretical
// value of 0.5 for this game.
func InterpretGain(gain float64) string {
	switch {
	case math.Abs(gain-0.5) <= 0.05:
		return fmt.Sprintf("Normalized gain %.2f: switching recovered about half of the games staying would have lost, matching the theoretical 0.50.", gain)
	case gain > 0.5:
		return fmt.Sprintf("Normalized gain %.2f: above the theoretical 0.50, which a fair batch only shows by chance.", gain)
	default:
		return fmt.Sprintf("Normalized gain %.2f: below the theoretical 0.50, which a fair batch only shows by chance.", gain)
	}
}

// FormatSummaryReport produces a full plain-language report from a
// batch result.
func FormatSummaryReport(result *simulation.BatchResult) string {
	var b strings.Builder
	printer := message.NewPrinter(language.English)

	b.WriteString("=== Interpretation ===\n\n")
	b.WriteString(printer.Sprintf("Played %d games with both strategies resolved against the same doors.\n\n", result.Games))

	odds := game.ExactOdds()
	for _, s := range result.Summaries {
		expected := odds.WinProbability(s.Strategy)
		icon := "✓"
		if math.Abs(s.WinRate-expected) > 0.05 {
			icon = "✗"
		}
		b.WriteString(fmt.Sprintf("  %s %-7s %s\n", icon, s.Strategy, InterpretWinRate(s.WinRate, expected)))
	}
	b.WriteString("\n")

	b.WriteString(InterpretAdvantage(result.Advantage))
	b.WriteString("\n\n")

	b.WriteString("Why: the first pick finds the car 1 time in 3. The host always opens\n")
	b.WriteString("a goat door that is not the pick, so switching wins exactly when the\n")
	b.WriteString("first pick was wrong: 2 times in 3.\n\n")

	b.WriteString(InterpretGain(result.Advantage.NormalizedGain))
	b.WriteString("\n")

	return b.String()
}
