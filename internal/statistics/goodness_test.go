package statistics

import (
	"math"
	"testing"

	"github.com/bbmoren2/montyhall/internal/game"
)

func TestVerify_PerfectCountsPass(t *testing.T) {
	// Exactly 1/3 stay wins: the chi-square statistic is zero.
	verdict := Verify(Tabulate(fakeBatch(3000, 9000)), 0.01)

	if !verdict.Pass {
		t.Fatalf("theoretical counts should pass, got %+v", verdict)
	}
	if len(verdict.Fits) != 2 {
		t.Fatalf("expected 2 fits, got %d", len(verdict.Fits))
	}
	for _, fit := range verdict.Fits {
		if !fit.Pass {
			t.Errorf("%s fit should pass, p=%v", fit.Strategy, fit.PValue)
		}
		if fit.ChiSquare > 1e-9 {
			t.Errorf("%s chi-square = %v, want 0", fit.Strategy, fit.ChiSquare)
		}
		if fit.PValue < 0.99 {
			t.Errorf("%s p-value = %v, want ~1", fit.Strategy, fit.PValue)
		}
	}
}

func TestVerify_RiggedCountsFail(t *testing.T) {
	// Half the games won by staying is far outside a fair game.
	verdict := Verify(Tabulate(fakeBatch(4500, 9000)), 0.01)

	if verdict.Pass {
		t.Fatalf("rigged counts should fail, got %+v", verdict)
	}
	for _, fit := range verdict.Fits {
		if fit.Pass {
			t.Errorf("%s fit should fail at rate %v", fit.Strategy, fit.ObservedWinRate)
		}
		if fit.ChiSquare < 100 {
			t.Errorf("%s chi-square = %v, expected a large statistic", fit.Strategy, fit.ChiSquare)
		}
		if fit.PValue >= 0.01 {
			t.Errorf("%s p-value = %v, want < 0.01", fit.Strategy, fit.PValue)
		}
	}
}

func TestVerify_ExpectationsComeFromEnumeration(t *testing.T) {
	verdict := Verify(Tabulate(fakeBatch(1, 3)), 0.01)

	if math.Abs(verdict.Fits[0].ExpectedWinRate-1.0/3.0) > 1e-12 {
		t.Errorf("stay expectation = %v, want 1/3", verdict.Fits[0].ExpectedWinRate)
	}
	if math.Abs(verdict.Fits[1].ExpectedWinRate-2.0/3.0) > 1e-12 {
		t.Errorf("switch expectation = %v, want 2/3", verdict.Fits[1].ExpectedWinRate)
	}
}

func TestVerify_EmptyBatchPassesVacuously(t *testing.T) {
	verdict := Verify(Tabulate(nil), 0.01)

	if !verdict.Pass {
		t.Errorf("empty batch has nothing to reject, got %+v", verdict)
	}
	for _, fit := range verdict.Fits {
		if fit.PValue != 1 || !fit.Pass {
			t.Errorf("%s empty fit = %+v, want vacuous pass", fit.Strategy, fit)
		}
	}
}

func TestVerify_AlphaFallsBackToDefault(t *testing.T) {
	for _, alpha := range []float64{0, -1, 1, 2} {
		verdict := Verify(Tabulate(fakeBatch(1, 3)), alpha)
		if verdict.Alpha != DefaultAlpha {
			t.Errorf("alpha %v should fall back to %v, got %v", alpha, DefaultAlpha, verdict.Alpha)
		}
	}
}

func TestVerify_FitStrategiesOrdered(t *testing.T) {
	verdict := Verify(Tabulate(fakeBatch(1, 3)), 0.01)

	if verdict.Fits[0].Strategy != game.StrategyStay || verdict.Fits[1].Strategy != game.StrategySwitch {
		t.Errorf("fits out of order: %s, %s", verdict.Fits[0].Strategy, verdict.Fits[1].Strategy)
	}
}
