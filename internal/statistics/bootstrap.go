package statistics

import (
	"math"
	"math/rand"
	"sort"

	"github.com/bbmoren2/montyhall/internal/game"
)

// ConfidenceInterval holds the result of a bootstrap confidence
// interval computation over a batch-derived series.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	NumBootstraps   int     `json:"num_bootstraps"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples.
const DefaultBootstrapIterations = 10000

// WinIndicators extracts the 0/1 win series for one strategy: element i
// is 1 when that strategy won game i.
func WinIndicators(records []game.Record, strat game.Strategy) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		if rec.Result(strat).Outcome == game.OutcomeWin {
			out[i] = 1
		}
	}
	return out
}

// AdvantageSeries extracts the per-game switch-over-stay edge: +1 when
// switching won the game, -1 when staying did. Its mean estimates
// P(switch wins) - P(stay wins).
func AdvantageSeries(records []game.Record) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		if rec.Switch.Outcome == game.OutcomeWin {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// BootstrapCI computes a bootstrap confidence interval over the given
// series using the percentile method. confidenceLevel should be in
// (0, 1), e.g. 0.95. Returns a degenerate interval when fewer than 2
// data points exist.
func BootstrapCI(values []float64, confidenceLevel float64) ConfidenceInterval {
	return BootstrapCIWithSeed(values, confidenceLevel, -1)
}

// BootstrapCIWithSeed is like BootstrapCI but accepts a seed for
// reproducibility. A negative seed uses a non-deterministic source.
func BootstrapCIWithSeed(values []float64, confidenceLevel float64, seed int64) ConfidenceInterval {
	n := len(values)
	if n < 2 {
		m := mean(values)
		return ConfidenceInterval{
			Lower:           m,
			Upper:           m,
			Mean:            m,
			ConfidenceLevel: confidenceLevel,
			NumBootstraps:   0,
		}
	}

	var r *rand.Rand
	if seed >= 0 {
		r = rand.New(rand.NewSource(seed))
	} else {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	m := mean(values)
	iters := DefaultBootstrapIterations

	// Resample with replacement, keeping the mean of each resample.
	bootMeans := make([]float64, iters)
	sample := make([]float64, n)
	for i := 0; i < iters; i++ {
		for j := 0; j < n; j++ {
			sample[j] = values[r.Intn(n)]
		}
		bootMeans[i] = mean(sample)
	}

	sort.Float64s(bootMeans)

	// Percentile method.
	alpha := 1.0 - confidenceLevel
	loIdx := int(math.Floor(alpha / 2.0 * float64(iters)))
	hiIdx := int(math.Floor((1.0 - alpha/2.0) * float64(iters)))
	if hiIdx >= iters {
		hiIdx = iters - 1
	}

	return ConfidenceInterval{
		Lower:           bootMeans[loIdx],
		Upper:           bootMeans[hiIdx],
		Mean:            m,
		ConfidenceLevel: confidenceLevel,
		NumBootstraps:   iters,
	}
}

// IsSignificant returns true if the confidence interval does not
// contain zero. Applied to an advantage series it means the data rules
// out "switching does not matter" at the interval's confidence level.
func IsSignificant(ci ConfidenceInterval) bool {
	return ci.Lower > 0 || ci.Upper < 0
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
