package simulation

import (
	"time"

	"github.com/bbmoren2/montyhall/internal/game"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

// BatchResult is the complete outcome of one simulated batch: every
// played record plus the aggregate tables derived from them. The seed
// is always echoed so any batch can be replayed exactly.
type BatchResult struct {
	RunID       string                                     `json:"run_id"`
	Seed        int64                                      `json:"seed"`
	Games       int                                        `json:"games"`
	Timestamp   time.Time                                  `json:"timestamp"`
	DurationMs  int64                                      `json:"duration_ms"`
	Records     []game.Record                              `json:"records"`
	Table       statistics.CrossTab                        `json:"table"`
	Proportions map[game.Strategy]map[game.Outcome]float64 `json:"proportions"`
	Summaries   []statistics.StrategySummary               `json:"summaries"`
	Advantage   statistics.Advantage                       `json:"advantage"`
	Verdict     statistics.Verdict                         `json:"verdict"`
	Checkpoints []statistics.Checkpoint                    `json:"checkpoints,omitempty"`
	TailStats   []statistics.TailStats                     `json:"tail_stats,omitempty"`
}

// Summary returns the summary for strat, or a zero value when the
// batch never computed one.
func (b *BatchResult) Summary(strat game.Strategy) statistics.StrategySummary {
	for _, s := range b.Summaries {
		if s.Strategy == strat {
			return s
		}
	}
	return statistics.StrategySummary{Strategy: strat}
}
