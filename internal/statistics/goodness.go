package statistics

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bbmoren2/montyhall/internal/game"
)

// DefaultAlpha is the significance level for goodness-of-fit checks.
// A fair simulation fails a check with probability alpha, so the
// default is kept low.
const DefaultAlpha = 0.01

// FitResult compares one strategy's observed outcome counts against
// the exact odds with a chi-square goodness-of-fit test (1 degree of
// freedom: win vs lose).
type FitResult struct {
	Strategy        game.Strategy `json:"strategy"`
	Games           int           `json:"games"`
	ExpectedWinRate float64       `json:"expected_win_rate"`
	ObservedWinRate float64       `json:"observed_win_rate"`
	ChiSquare       float64       `json:"chi_square"`
	PValue          float64       `json:"p_value"`
	Pass            bool          `json:"pass"`
}

// Verdict aggregates the per-strategy fits for one batch.
type Verdict struct {
	Alpha float64     `json:"alpha"`
	Fits  []FitResult `json:"fits"`
	Pass  bool        `json:"pass"`
}

// Verify tests every strategy's counts against the exact enumeration
// and combines the fits into a single verdict. Expected rates come
// from game.ExactOdds, not from hardcoded constants.
func Verify(tab CrossTab, alpha float64) Verdict {
	if alpha <= 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}

	odds := game.ExactOdds()
	verdict := Verdict{Alpha: alpha, Pass: true}

	for _, strat := range tab.Strategies {
		fit := chiSquareFit(tab, strat, odds.WinProbability(strat), alpha)
		if !fit.Pass {
			verdict.Pass = false
		}
		verdict.Fits = append(verdict.Fits, fit)
	}

	return verdict
}

func chiSquareFit(tab CrossTab, strat game.Strategy, expected, alpha float64) FitResult {
	wins := float64(tab.Count(strat, game.OutcomeWin))
	losses := float64(tab.Count(strat, game.OutcomeLose))
	n := wins + losses

	fit := FitResult{
		Strategy:        strat,
		Games:           int(n),
		ExpectedWinRate: expected,
	}
	if n == 0 {
		// Nothing observed, nothing to reject.
		fit.PValue = 1
		fit.Pass = true
		return fit
	}

	fit.ObservedWinRate = wins / n

	expWin := expected * n
	expLose := n - expWin
	fit.ChiSquare = (wins-expWin)*(wins-expWin)/expWin +
		(losses-expLose)*(losses-expLose)/expLose

	dist := distuv.ChiSquared{K: 1}
	fit.PValue = 1 - dist.CDF(fit.ChiSquare)
	fit.Pass = fit.PValue >= alpha

	return fit
}
