package game

import (
	"fmt"

	"github.com/bbmoren2/montyhall/internal/rng"
)

// NewAssignment deals a fresh game: the car is placed uniformly at
// random and goats fill the remaining doors.
func NewAssignment(src rng.Source) Assignment {
	var a Assignment
	for i := range a {
		a[i] = PrizeGoat
	}
	a[src.IntN(NumDoors)] = PrizeCar
	return a
}

// PickDoor draws the contestant's initial pick, uniform over all doors
// and independent of the assignment.
func PickDoor(src rng.Source) Door {
	return Door(src.IntN(NumDoors) + 1)
}

// RevealGoat opens a door for the host. The revealed door is never the
// contestant's pick and never hides the car. When the pick is the car
// the host chooses uniformly between the two goat doors; otherwise the
// single remaining goat door is forced and no randomness is consumed.
func RevealGoat(src rng.Source, a Assignment, pick Door) (Door, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if !pick.Valid() {
		return 0, fmt.Errorf("%w: pick %d", ErrInvalidDoor, pick)
	}

	var candidates []Door
	for d := Door(1); d <= NumDoors; d++ {
		if d != pick && a.Behind(d) == PrizeGoat {
			candidates = append(candidates, d)
		}
	}

	switch len(candidates) {
	case 0:
		// Unreachable once the assignment validates.
		return 0, fmt.Errorf("%w: pick %d", ErrNoGoat, pick)
	case 1:
		return candidates[0], nil
	default:
		return candidates[src.IntN(len(candidates))], nil
	}
}

// ApplyStrategy resolves the contestant's final door. Stay keeps the
// pick; Switch takes the unique door that is neither the pick nor the
// revealed one.
func ApplyStrategy(strat Strategy, pick, revealed Door) (Door, error) {
	if !pick.Valid() {
		return 0, fmt.Errorf("%w: pick %d", ErrInvalidDoor, pick)
	}
	if !revealed.Valid() {
		return 0, fmt.Errorf("%w: revealed %d", ErrInvalidDoor, revealed)
	}
	if pick == revealed {
		return 0, fmt.Errorf("%w: door %d", ErrSameDoor, pick)
	}

	switch strat {
	case StrategyStay:
		return pick, nil
	case StrategySwitch:
		// Doors 1+2+3 sum to 6, so the remaining door falls out.
		return 6 - pick - revealed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, strat)
	}
}

// Judge scores a finished game: the contestant wins exactly when the
// final door hides the car.
func Judge(a Assignment, final Door) (Outcome, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if !final.Valid() {
		return "", fmt.Errorf("%w: final %d", ErrInvalidDoor, final)
	}

	if a.Behind(final) == PrizeCar {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}

// Play runs one complete game: deal, pick, reveal, then resolve and
// judge BOTH strategies against that same state. The returned record
// therefore pairs complementary outcomes: staying wins exactly when
// switching loses.
func Play(src rng.Source) (Record, error) {
	a := NewAssignment(src)
	pick := PickDoor(src)

	revealed, err := RevealGoat(src, a, pick)
	if err != nil {
		return Record{}, fmt.Errorf("reveal goat door: %w", err)
	}

	resolve := func(strat Strategy) (StrategyResult, error) {
		final, err := ApplyStrategy(strat, pick, revealed)
		if err != nil {
			return StrategyResult{}, err
		}
		outcome, err := Judge(a, final)
		if err != nil {
			return StrategyResult{}, err
		}
		return StrategyResult{Strategy: strat, Final: final, Outcome: outcome}, nil
	}

	rec := Record{Assignment: a, Pick: pick, Revealed: revealed}

	if rec.Stay, err = resolve(StrategyStay); err != nil {
		return Record{}, fmt.Errorf("resolve stay: %w", err)
	}
	if rec.Switch, err = resolve(StrategySwitch); err != nil {
		return Record{}, fmt.Errorf("resolve switch: %w", err)
	}

	return rec, nil
}
