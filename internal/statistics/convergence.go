package statistics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/bbmoren2/montyhall/internal/game"
)

// Checkpoint is a cumulative win-rate snapshot taken part-way through
// a batch.
type Checkpoint struct {
	Games         int     `json:"games"`
	StayWinRate   float64 `json:"stay_win_rate"`
	SwitchWinRate float64 `json:"switch_win_rate"`
}

// Checkpoints samples k evenly spaced cumulative win rates across the
// batch; the last checkpoint always covers every record. Returns nil
// when there is nothing to sample.
func Checkpoints(records []game.Record, k int) []Checkpoint {
	n := len(records)
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	out := make([]Checkpoint, 0, k)
	stayWins, switchWins := 0, 0
	next := 1

	for i, rec := range records {
		if rec.Stay.Outcome == game.OutcomeWin {
			stayWins++
		}
		if rec.Switch.Outcome == game.OutcomeWin {
			switchWins++
		}

		games := i + 1
		if games == next*n/k {
			out = append(out, Checkpoint{
				Games:         games,
				StayWinRate:   float64(stayWins) / float64(games),
				SwitchWinRate: float64(switchWins) / float64(games),
			})
			next++
		}
	}

	return out
}

// TailStats summarizes the settled tail of one strategy's checkpoint
// series. A converged simulation shows a tight band around the exact
// odds.
type TailStats struct {
	Strategy game.Strategy `json:"strategy"`
	Mean     float64       `json:"mean"`
	Min      float64       `json:"min"`
	Max      float64       `json:"max"`
	StdDev   float64       `json:"std_dev"`
}

// TailSummary computes descriptive statistics over the second half of
// the checkpoint series for each strategy.
func TailSummary(points []Checkpoint) ([]TailStats, error) {
	if len(points) == 0 {
		return nil, nil
	}
	tail := points[len(points)/2:]

	var out []TailStats
	for _, strat := range game.Strategies() {
		series := make([]float64, len(tail))
		for i, cp := range tail {
			if strat == game.StrategySwitch {
				series[i] = cp.SwitchWinRate
			} else {
				series[i] = cp.StayWinRate
			}
		}

		ts := TailStats{Strategy: strat}
		var err error
		if ts.Mean, err = stats.Mean(series); err != nil {
			return nil, fmt.Errorf("summarize %s tail: %w", strat, err)
		}
		if ts.Min, err = stats.Min(series); err != nil {
			return nil, fmt.Errorf("summarize %s tail: %w", strat, err)
		}
		if ts.Max, err = stats.Max(series); err != nil {
			return nil, fmt.Errorf("summarize %s tail: %w", strat, err)
		}
		if ts.StdDev, err = stats.StandardDeviation(series); err != nil {
			return nil, fmt.Errorf("summarize %s tail: %w", strat, err)
		}
		out = append(out, ts)
	}

	return out, nil
}
