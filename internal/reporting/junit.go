package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/bbmoren2/montyhall/internal/simulation"
	"github.com/bbmoren2/montyhall/internal/statistics"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one batch of games.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one strategy's goodness-of-fit check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure represents a rejected goodness-of-fit check.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a check that had no games to test.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts a batch result to JUnit XML format. Each
// strategy's goodness-of-fit check becomes one test case, so a CI
// system can fail a pipeline when the observed win rates drift from
// the exact odds.
func ConvertToJUnit(result *simulation.BatchResult) *JUnitTestSuites {
	durationSec := float64(result.DurationMs) / 1000.0

	suite := JUnitTestSuite{
		Name:      "montyhall",
		Tests:     len(result.Verdict.Fits),
		Time:      durationSec,
		Timestamp: result.Timestamp.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "run_id", Value: result.RunID},
			{Name: "seed", Value: fmt.Sprintf("%d", result.Seed)},
			{Name: "games", Value: fmt.Sprintf("%d", result.Games)},
			{Name: "alpha", Value: fmt.Sprintf("%g", result.Verdict.Alpha)},
		},
	}

	// The batch plays every game before any check runs, so the split
	// across cases is nominal.
	var caseTime float64
	if len(result.Verdict.Fits) > 0 {
		caseTime = durationSec / float64(len(result.Verdict.Fits))
	}

	for _, fit := range result.Verdict.Fits {
		tc := convertFit(fit, caseTime)
		if tc.Failure != nil {
			suite.Failures++
		}
		if tc.Skipped != nil {
			suite.Skipped++
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Time:       durationSec,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func convertFit(fit statistics.FitResult, caseTime float64) JUnitTestCase {
	tc := JUnitTestCase{
		Name:      fmt.Sprintf("%s-win-rate", fit.Strategy),
		Classname: "goodness-of-fit",
		Time:      caseTime,
	}

	if fit.Games == 0 {
		tc.Skipped = &JUnitSkipped{Message: "no games observed"}
		return tc
	}

	if !fit.Pass {
		tc.Failure = &JUnitFailure{
			Message: fmt.Sprintf("%s won %.4f of games, expected %.4f", fit.Strategy, fit.ObservedWinRate, fit.ExpectedWinRate),
			Type:    "GoodnessOfFitFailure",
			Body:    fmt.Sprintf("chi-square=%.4f p-value=%.6f over %d games", fit.ChiSquare, fit.PValue, fit.Games),
		}
	}

	return tc
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(result *simulation.BatchResult, path string) error {
	suites := ConvertToJUnit(result)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
