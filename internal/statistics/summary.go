package statistics

import (
	"math"

	"github.com/bbmoren2/montyhall/internal/game"
)

// StrategySummary describes one strategy's empirical performance over a
// batch. WinRate stays unrounded; display rounding belongs to the
// proportion table.
type StrategySummary struct {
	Strategy game.Strategy `json:"strategy"`
	Games    int           `json:"games"`
	Wins     int           `json:"wins"`
	Losses   int           `json:"losses"`
	WinRate  float64       `json:"win_rate"`
	CI95Lo   float64       `json:"ci95_lo"`
	CI95Hi   float64       `json:"ci95_hi"`
}

// Summarize computes per-strategy summaries from a crosstab. The 95%
// interval uses the normal approximation for a binomial proportion
// (z=1.96), clamped to [0, 1].
func Summarize(tab CrossTab) []StrategySummary {
	out := make([]StrategySummary, 0, len(tab.Strategies))
	for _, strat := range tab.Strategies {
		wins := tab.Count(strat, game.OutcomeWin)
		losses := tab.Count(strat, game.OutcomeLose)
		n := wins + losses

		s := StrategySummary{
			Strategy: strat,
			Games:    n,
			Wins:     wins,
			Losses:   losses,
		}
		if n > 0 {
			p := float64(wins) / float64(n)
			margin := 1.96 * math.Sqrt(p*(1-p)/float64(n))
			s.WinRate = p
			s.CI95Lo = math.Max(0, p-margin)
			s.CI95Hi = math.Min(1, p+margin)
		}
		out = append(out, s)
	}
	return out
}
