// Package statistics aggregates and checks batches of played games:
// outcome crosstabs, win-rate confidence intervals, goodness-of-fit
// against the exact odds, and convergence summaries.
package statistics

import (
	"math"

	"github.com/bbmoren2/montyhall/internal/game"
)

// CrossTab tallies outcomes per strategy across a batch of games.
// Counts always materialize every (strategy, outcome) cell so the table
// keeps its shape even when a cell stays at zero.
type CrossTab struct {
	Strategies []game.Strategy                        `json:"strategies"`
	Outcomes   []game.Outcome                         `json:"outcomes"`
	Counts     map[game.Strategy]map[game.Outcome]int `json:"counts"`
	Games      int                                    `json:"games"`
}

// Tabulate counts win/lose per strategy over the given records.
func Tabulate(records []game.Record) CrossTab {
	tab := CrossTab{
		Strategies: game.Strategies(),
		Outcomes:   game.Outcomes(),
		Counts:     make(map[game.Strategy]map[game.Outcome]int),
		Games:      len(records),
	}

	for _, strat := range tab.Strategies {
		row := make(map[game.Outcome]int, len(tab.Outcomes))
		for _, o := range tab.Outcomes {
			row[o] = 0
		}
		tab.Counts[strat] = row
	}

	for _, rec := range records {
		for _, strat := range tab.Strategies {
			tab.Counts[strat][rec.Result(strat).Outcome]++
		}
	}

	return tab
}

// Count returns the tally for one (strategy, outcome) cell.
func (t CrossTab) Count(strat game.Strategy, outcome game.Outcome) int {
	return t.Counts[strat][outcome]
}

// RowTotal returns the number of judged outcomes for strat. Every
// record contributes one outcome per strategy, so this matches Games
// for tables built by Tabulate.
func (t CrossTab) RowTotal(strat game.Strategy) int {
	total := 0
	for _, o := range t.Outcomes {
		total += t.Counts[strat][o]
	}
	return total
}

// Proportions returns the row-normalized table: each strategy's counts
// divided by that strategy's total, rounded to 2 decimal places. Rows
// with no games stay all-zero.
func (t CrossTab) Proportions() map[game.Strategy]map[game.Outcome]float64 {
	out := make(map[game.Strategy]map[game.Outcome]float64, len(t.Strategies))
	for _, strat := range t.Strategies {
		row := make(map[game.Outcome]float64, len(t.Outcomes))
		total := t.RowTotal(strat)
		for _, o := range t.Outcomes {
			if total > 0 {
				row[o] = Round2(float64(t.Counts[strat][o]) / float64(total))
			} else {
				row[o] = 0
			}
		}
		out[strat] = row
	}
	return out
}

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
