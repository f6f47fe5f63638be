package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Simulation ran and passed any requested checks
	ExitCheckFailed = 1 // Simulation ran but failed the goodness-of-fit check
	ExitError       = 2 // Configuration or runtime error
)

// CheckFailureError indicates that the simulation ran successfully,
// but the observed win rates failed the goodness-of-fit check.
type CheckFailureError struct {
	Message string
}

func (e *CheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var checkErr *CheckFailureError
		if errors.As(err, &checkErr) {
			os.Exit(ExitCheckFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
