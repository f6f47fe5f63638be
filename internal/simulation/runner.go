// Package simulation plays batches of Monty Hall games and assembles
// their aggregate results.
package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/rng"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

// ErrInvalidGames reports a batch size below 1.
var ErrInvalidGames = errors.New("number of games must be at least 1")

// DefaultGames is the batch size used when the caller does not choose
// one.
const DefaultGames = 100

// Runner plays batches of games. A Runner is not safe for concurrent
// use; batches run sequentially. Every batch plays against a source
// seeded for that batch alone, so the seed echoed in its result always
// replays it.
type Runner struct {
	seed        int64
	seeded      bool
	checkpoints int
	alpha       float64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSeed fixes the batch seed, making every Run replay the identical
// batch. Without it each batch draws a fresh seed from the system
// entropy source.
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) {
		r.seed = seed
		r.seeded = true
	}
}

// WithCheckpoints samples k cumulative win-rate checkpoints per batch.
// Zero disables checkpointing.
func WithCheckpoints(k int) RunnerOption {
	return func(r *Runner) {
		r.checkpoints = k
	}
}

// WithAlpha sets the significance level for the batch verdict.
func WithAlpha(alpha float64) RunnerOption {
	return func(r *Runner) {
		r.alpha = alpha
	}
}

// NewRunner creates a batch runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{alpha: statistics.DefaultAlpha}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run plays n games and aggregates the batch. The batch size is
// validated before any game is played: zero or negative sizes are
// rejected with ErrInvalidGames.
func (r *Runner) Run(n int) (*BatchResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGames, n)
	}

	seed := r.seed
	if !r.seeded {
		fresh, err := rng.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seed batch: %w", err)
		}
		seed = fresh
	}
	src := rng.NewSeeded(seed)

	start := time.Now()
	slog.Debug("starting batch", "games", n, "seed", seed)

	records := make([]game.Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := game.Play(src)
		if err != nil {
			return nil, fmt.Errorf("play game %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	tab := statistics.Tabulate(records)
	points := statistics.Checkpoints(records, r.checkpoints)
	tails, err := statistics.TailSummary(points)
	if err != nil {
		return nil, fmt.Errorf("summarize convergence: %w", err)
	}

	// The bootstrap needs a non-negative seed to stay deterministic.
	bootSeed := seed & (1<<63 - 1)

	result := &BatchResult{
		RunID:       uuid.NewString(),
		Seed:        seed,
		Games:       n,
		Timestamp:   start,
		DurationMs:  time.Since(start).Milliseconds(),
		Records:     records,
		Table:       tab,
		Proportions: tab.Proportions(),
		Summaries:   statistics.Summarize(tab),
		Advantage:   statistics.CompareStrategies(records, bootSeed),
		Verdict:     statistics.Verify(tab, r.alpha),
		Checkpoints: points,
		TailStats:   tails,
	}

	slog.Debug("batch complete",
		"games", n,
		"stay_win_rate", result.Advantage.StayWinRate,
		"switch_win_rate", result.Advantage.SwitchWinRate,
		"duration_ms", result.DurationMs)

	return result, nil
}
