// Package game implements the Monty Hall stage: a car hidden behind
// one of three doors, an initial pick, the host's goat reveal, and the
// stay-or-switch decision. Every operation is a pure function over the
// injected random source, so identical sources replay identical games.
package game

import (
	"errors"
	"fmt"
)

// Door is a 1-indexed door position on the stage.
type Door int

// NumDoors is the number of doors in the classic game.
const NumDoors = 3

// Valid reports whether d lies within 1..NumDoors.
func (d Door) Valid() bool {
	return d >= 1 && d <= NumDoors
}

// Prize identifies what a door hides.
type Prize string

const (
	PrizeCar  Prize = "car"
	PrizeGoat Prize = "goat"
)

// Strategy is the contestant's policy once the host has opened a door.
type Strategy string

const (
	StrategyStay   Strategy = "stay"
	StrategySwitch Strategy = "switch"
)

// Strategies lists both strategies in presentation order.
func Strategies() []Strategy {
	return []Strategy{StrategyStay, StrategySwitch}
}

// Outcome is the judged result of a finished game.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// Outcomes lists both outcomes in presentation order.
func Outcomes() []Outcome {
	return []Outcome{OutcomeWin, OutcomeLose}
}

var (
	// ErrInvalidAssignment reports an assignment that does not hold
	// exactly one car.
	ErrInvalidAssignment = errors.New("assignment must hold exactly one car")

	// ErrInvalidDoor reports a door outside 1..NumDoors.
	ErrInvalidDoor = errors.New("door must be between 1 and 3")

	// ErrInvalidStrategy reports a strategy other than stay or switch.
	ErrInvalidStrategy = errors.New("strategy must be stay or switch")

	// ErrSameDoor reports a pick and reveal landing on the same door,
	// which a well-formed game can never produce.
	ErrSameDoor = errors.New("picked and revealed doors must differ")

	// ErrNoGoat reports a reveal with no goat door left to open, which
	// a valid assignment can never produce.
	ErrNoGoat = errors.New("no goat door available to reveal")
)

// Assignment records what stands behind each door. Index i holds the
// prize behind door i+1.
type Assignment [NumDoors]Prize

// Behind returns the prize behind d. The door must be valid.
func (a Assignment) Behind(d Door) Prize {
	return a[d-1]
}

// CarDoor returns the door hiding the car, or 0 when the assignment
// holds none.
func (a Assignment) CarDoor() Door {
	for i, p := range a {
		if p == PrizeCar {
			return Door(i + 1)
		}
	}
	return 0
}

// Validate checks that every door holds a known prize and that exactly
// one of them is the car.
func (a Assignment) Validate() error {
	cars := 0
	for i, p := range a {
		switch p {
		case PrizeCar:
			cars++
		case PrizeGoat:
		default:
			return fmt.Errorf("%w: door %d holds unknown prize %q", ErrInvalidAssignment, i+1, p)
		}
	}
	if cars != 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAssignment, cars)
	}
	return nil
}

// StrategyResult is one strategy's resolution of a game.
type StrategyResult struct {
	Strategy Strategy `json:"strategy"`
	Final    Door     `json:"final_door"`
	Outcome  Outcome  `json:"outcome"`
}

// Record is one fully played game. Both strategies are resolved against
// the same assignment, pick, and reveal, so each record shows directly
// what staying or switching would have done.
type Record struct {
	Assignment Assignment     `json:"assignment"`
	Pick       Door           `json:"pick"`
	Revealed   Door           `json:"revealed"`
	Stay       StrategyResult `json:"stay"`
	Switch     StrategyResult `json:"switch"`
}

// Result returns the resolution for strat.
func (r Record) Result(strat Strategy) StrategyResult {
	if strat == StrategySwitch {
		return r.Switch
	}
	return r.Stay
}
