package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bbmoren2/montyhall/internal/simulation"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

func TestInterpretWinRate(t *testing.T) {
	tests := []struct {
		name     string
		observed float64
		expected float64
		want     string
	}{
		{"spot on", 1.0 / 3.0, 1.0 / 3.0, "won 33.3% of games, close to the expected 33.3%"},
		{"close", 0.34, 1.0 / 3.0, "won 34.0% of games, close to the expected 33.3%"},
		{"switch close", 0.66, 2.0 / 3.0, "won 66.0% of games, close to the expected 66.7%"},
		{"within noise", 0.30, 1.0 / 3.0, "won 30.0% of games, within noise of the expected 33.3%"},
		{"way off", 0.50, 1.0 / 3.0, "won 50.0% of games, well off the expected 33.3%. Play more games or check the random source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretWinRate(tt.observed, tt.expected)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterpretAdvantage(t *testing.T) {
	tests := []struct {
		name     string
		adv      statistics.Advantage
		contains []string
	}{
		{
			name:     "no advantage",
			adv:      statistics.Advantage{Delta: -0.02, Ratio: 0.94},
			contains: []string{"no advantage", "play more games"},
		},
		{
			name: "significant advantage",
			adv: statistics.Advantage{
				Delta:       0.33,
				Ratio:       1.98,
				BootstrapCI: statistics.ConfidenceInterval{Lower: 0.31, Upper: 0.35},
				Significant: true,
			},
			contains: []string{"1.98x", "+33.0 point", "excludes zero", "not sampling noise"},
		},
		{
			name: "positive but unresolved",
			adv: statistics.Advantage{
				Delta:       0.10,
				Ratio:       1.40,
				BootstrapCI: statistics.ConfidenceInterval{Lower: -0.05, Upper: 0.25},
				Significant: false,
			},
			contains: []string{"includes zero", "play more games"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretAdvantage(tt.adv)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestInterpretGain(t *testing.T) {
	tests := []struct {
		name string
		gain float64
		want string
	}{
		{"theoretical", 0.50, "Normalized gain 0.50: switching recovered about half of the games staying would have lost, matching the theoretical 0.50."},
		{"near theoretical", 0.47, "Normalized gain 0.47: switching recovered about half of the games staying would have lost, matching the theoretical 0.50."},
		{"above", 0.60, "Normalized gain 0.60: above the theoretical 0.50, which a fair batch only shows by chance."},
		{"below", 0.30, "Normalized gain 0.30: below the theoretical 0.50, which a fair batch only shows by chance."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretGain(tt.gain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSummaryReport(t *testing.T) {
	report := FormatSummaryReport(newBatchResult())

	assert.Contains(t, report, "=== Interpretation ===")
	assert.Contains(t, report, "Played 9,000 games")
	assert.Contains(t, report, "✓ stay")
	assert.Contains(t, report, "✓ switch")
	assert.Contains(t, report, "close to the expected 33.3%")
	assert.Contains(t, report, "close to the expected 66.7%")
	assert.Contains(t, report, "1.99x")
	assert.Contains(t, report, "not sampling noise")
	assert.Contains(t, report, "Why: the first pick finds the car 1 time in 3")
	assert.Contains(t, report, "2 times in 3")
	assert.Contains(t, report, "matching the theoretical 0.50")
}

func TestFormatSummaryReport_DriftedStrategy(t *testing.T) {
	result := newBatchResult()
	result.Summaries[0].WinRate = 0.45

	report := FormatSummaryReport(result)

	assert.Contains(t, report, "✗ stay")
	assert.Contains(t, report, "well off the expected 33.3%")
	assert.Contains(t, report, "✓ switch")
}

func TestFormatSummaryReport_Empty(t *testing.T) {
	report := FormatSummaryReport(&simulation.BatchResult{})
	assert.True(t, strings.Contains(report, "Interpretation"))
}
