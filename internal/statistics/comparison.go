package statistics

import (
	"math"

	"github.com/bbmoren2/montyhall/internal/game"
)

// Advantage quantifies the switch-over-stay edge in a batch, with a
// bootstrap interval over the per-game advantage series.
type Advantage struct {
	StayWinRate    float64            `json:"stay_win_rate"`
	SwitchWinRate  float64            `json:"switch_win_rate"`
	Delta          float64            `json:"delta"`
	Ratio          float64            `json:"ratio"`
	NormalizedGain float64            `json:"normalized_gain"`
	BootstrapCI    ConfidenceInterval `json:"bootstrap_ci"`
	Significant    bool               `json:"significant"`
}

// CompareStrategies measures how much switching beat staying across the
// records. The bootstrap uses the given seed; a negative seed draws a
// non-deterministic one.
func CompareStrategies(records []game.Record, seed int64) Advantage {
	adv := Advantage{}
	if len(records) == 0 {
		return adv
	}

	n := float64(len(records))
	adv.StayWinRate = sum(WinIndicators(records, game.StrategyStay)) / n
	adv.SwitchWinRate = sum(WinIndicators(records, game.StrategySwitch)) / n
	adv.Delta = adv.SwitchWinRate - adv.StayWinRate
	if adv.StayWinRate > 0 {
		adv.Ratio = adv.SwitchWinRate / adv.StayWinRate
	}
	adv.NormalizedGain = NormalizedGain(adv.StayWinRate, adv.SwitchWinRate)

	adv.BootstrapCI = BootstrapCIWithSeed(AdvantageSeries(records), 0.95, seed)
	adv.Significant = IsSignificant(adv.BootstrapCI)

	return adv
}

// NormalizedGain computes Hake's normalized gain (1998):
//
//	g = (post - pre) / (1 - pre)
//
// Read here as: of the games staying would lose, what share does
// switching recover? The theoretical value is 0.5. Returns 0 if
// pre >= 1.0 or pre == post. Returns 1.0 if post >= 1.0.
func NormalizedGain(pre, post float64) float64 {
	if pre >= 1.0 {
		return 0.0
	}
	if post >= 1.0 {
		return 1.0
	}
	if math.Abs(post-pre) < 1e-12 {
		return 0.0
	}
	return (post - pre) / (1.0 - pre)
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
