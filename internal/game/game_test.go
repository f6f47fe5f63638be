package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbmoren2/montyhall/internal/rng"
)

func TestAssignmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       Assignment
		wantErr error
	}{
		{"one car", Assignment{PrizeCar, PrizeGoat, PrizeGoat}, nil},
		{"car in middle", Assignment{PrizeGoat, PrizeCar, PrizeGoat}, nil},
		{"no car", Assignment{PrizeGoat, PrizeGoat, PrizeGoat}, ErrInvalidAssignment},
		{"two cars", Assignment{PrizeCar, PrizeCar, PrizeGoat}, ErrInvalidAssignment},
		{"unknown prize", Assignment{PrizeCar, Prize("banana"), PrizeGoat}, ErrInvalidAssignment},
		{"zero value", Assignment{}, ErrInvalidAssignment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAssignmentCarDoor(t *testing.T) {
	assert.Equal(t, Door(1), Assignment{PrizeCar, PrizeGoat, PrizeGoat}.CarDoor())
	assert.Equal(t, Door(2), Assignment{PrizeGoat, PrizeCar, PrizeGoat}.CarDoor())
	assert.Equal(t, Door(3), Assignment{PrizeGoat, PrizeGoat, PrizeCar}.CarDoor())
	assert.Equal(t, Door(0), Assignment{PrizeGoat, PrizeGoat, PrizeGoat}.CarDoor())
}

func TestNewAssignmentAlwaysValid(t *testing.T) {
	src := rng.NewSeeded(42)
	for i := 0; i < 1000; i++ {
		a := NewAssignment(src)
		require.NoError(t, a.Validate())
	}
}

func TestNewAssignmentPlacesCarWhereDrawn(t *testing.T) {
	a := NewAssignment(rng.NewScript(2))
	assert.Equal(t, Assignment{PrizeGoat, PrizeGoat, PrizeCar}, a)
}

func TestNewAssignmentUniform(t *testing.T) {
	src := rng.NewSeeded(1)
	counts := map[Door]int{}
	const draws = 9000
	for i := 0; i < draws; i++ {
		counts[NewAssignment(src).CarDoor()]++
	}

	for d := Door(1); d <= NumDoors; d++ {
		assert.InDelta(t, draws/3, counts[d], 300, "car behind door %d", d)
	}
}

func TestPickDoorRangeAndUniform(t *testing.T) {
	src := rng.NewSeeded(2)
	counts := map[Door]int{}
	const draws = 9000
	for i := 0; i < draws; i++ {
		d := PickDoor(src)
		require.True(t, d.Valid(), "pick %d out of range", d)
		counts[d]++
	}

	for d := Door(1); d <= NumDoors; d++ {
		assert.InDelta(t, draws/3, counts[d], 300, "pick of door %d", d)
	}
}

func TestRevealGoatNeverPickNeverCar(t *testing.T) {
	src := rng.NewSeeded(3)
	for car := Door(1); car <= NumDoors; car++ {
		var a Assignment
		for i := range a {
			a[i] = PrizeGoat
		}
		a[car-1] = PrizeCar

		for pick := Door(1); pick <= NumDoors; pick++ {
			for i := 0; i < 50; i++ {
				revealed, err := RevealGoat(src, a, pick)
				require.NoError(t, err)
				assert.NotEqual(t, pick, revealed)
				assert.Equal(t, PrizeGoat, a.Behind(revealed))
			}
		}
	}
}

func TestRevealGoatForcedWhenPickIsGoat(t *testing.T) {
	a := Assignment{PrizeGoat, PrizeCar, PrizeGoat}

	// An empty script proves the forced reveal draws no randomness.
	revealed, err := RevealGoat(rng.NewScript(), a, 1)
	require.NoError(t, err)
	assert.Equal(t, Door(3), revealed)
}

func TestRevealGoatChoosesWhenPickIsCar(t *testing.T) {
	a := Assignment{PrizeCar, PrizeGoat, PrizeGoat}

	revealed, err := RevealGoat(rng.NewScript(0), a, 1)
	require.NoError(t, err)
	assert.Equal(t, Door(2), revealed)

	revealed, err = RevealGoat(rng.NewScript(1), a, 1)
	require.NoError(t, err)
	assert.Equal(t, Door(3), revealed)
}

func TestRevealGoatHostChoiceUniform(t *testing.T) {
	a := Assignment{PrizeCar, PrizeGoat, PrizeGoat}
	src := rng.NewSeeded(4)

	counts := map[Door]int{}
	const draws = 2000
	for i := 0; i < draws; i++ {
		revealed, err := RevealGoat(src, a, 1)
		require.NoError(t, err)
		counts[revealed]++
	}

	assert.Equal(t, draws, counts[2]+counts[3])
	assert.InDelta(t, draws/2, counts[2], 150)
	assert.InDelta(t, draws/2, counts[3], 150)
}

func TestRevealGoatRejectsBadInput(t *testing.T) {
	valid := Assignment{PrizeCar, PrizeGoat, PrizeGoat}

	_, err := RevealGoat(rng.NewScript(), Assignment{PrizeCar, PrizeCar, PrizeGoat}, 1)
	assert.ErrorIs(t, err, ErrInvalidAssignment)

	_, err = RevealGoat(rng.NewScript(), valid, 0)
	assert.ErrorIs(t, err, ErrInvalidDoor)

	_, err = RevealGoat(rng.NewScript(), valid, 4)
	assert.ErrorIs(t, err, ErrInvalidDoor)
}

func TestApplyStrategyExhaustive(t *testing.T) {
	for pick := Door(1); pick <= NumDoors; pick++ {
		for revealed := Door(1); revealed <= NumDoors; revealed++ {
			if pick == revealed {
				continue
			}

			stay, err := ApplyStrategy(StrategyStay, pick, revealed)
			require.NoError(t, err)
			assert.Equal(t, pick, stay, "stay must keep the pick")

			sw, err := ApplyStrategy(StrategySwitch, pick, revealed)
			require.NoError(t, err)
			assert.True(t, sw.Valid(), "switch door %d out of range", sw)
			assert.NotEqual(t, pick, sw, "switch must leave the pick")
			assert.NotEqual(t, revealed, sw, "switch must avoid the revealed door")
		}
	}
}

func TestApplyStrategyRejectsBadInput(t *testing.T) {
	_, err := ApplyStrategy(StrategySwitch, 1, 1)
	assert.ErrorIs(t, err, ErrSameDoor)

	_, err = ApplyStrategy(StrategyStay, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidDoor)

	_, err = ApplyStrategy(StrategyStay, 1, 7)
	assert.ErrorIs(t, err, ErrInvalidDoor)

	_, err = ApplyStrategy(Strategy("hedge"), 1, 2)
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestJudgeExhaustive(t *testing.T) {
	for car := Door(1); car <= NumDoors; car++ {
		var a Assignment
		for i := range a {
			a[i] = PrizeGoat
		}
		a[car-1] = PrizeCar

		for final := Door(1); final <= NumDoors; final++ {
			outcome, err := Judge(a, final)
			require.NoError(t, err)
			if final == car {
				assert.Equal(t, OutcomeWin, outcome)
			} else {
				assert.Equal(t, OutcomeLose, outcome)
			}
		}
	}
}

func TestJudgeRejectsBadInput(t *testing.T) {
	_, err := Judge(Assignment{PrizeGoat, PrizeGoat, PrizeGoat}, 1)
	assert.ErrorIs(t, err, ErrInvalidAssignment)

	_, err = Judge(Assignment{PrizeCar, PrizeGoat, PrizeGoat}, 0)
	assert.ErrorIs(t, err, ErrInvalidDoor)
}

func TestPlayOutcomesAreComplementary(t *testing.T) {
	src := rng.NewSeeded(5)
	for i := 0; i < 2000; i++ {
		rec, err := Play(src)
		require.NoError(t, err)

		assert.NotEqual(t, rec.Stay.Outcome, rec.Switch.Outcome,
			"exactly one strategy wins any given game")
		assert.Equal(t, rec.Pick, rec.Stay.Final)
		assert.NotEqual(t, rec.Revealed, rec.Switch.Final)
		assert.Equal(t, PrizeGoat, rec.Assignment.Behind(rec.Revealed))
	}
}

func TestPlayScenarioPickedCar(t *testing.T) {
	// Car behind door 1, pick door 1, host chooses the first goat door.
	src := rng.NewScript(0, 0, 0)

	rec, err := Play(src)
	require.NoError(t, err)

	assert.Equal(t, Assignment{PrizeCar, PrizeGoat, PrizeGoat}, rec.Assignment)
	assert.Equal(t, Door(1), rec.Pick)
	assert.Equal(t, Door(2), rec.Revealed)
	assert.Equal(t, OutcomeWin, rec.Stay.Outcome)
	assert.Equal(t, OutcomeLose, rec.Switch.Outcome)
	assert.Equal(t, Door(3), rec.Switch.Final)

	// Same world, other host choice: the reveal moves but the
	// outcomes stay put.
	rec, err = Play(rng.NewScript(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, Door(3), rec.Revealed)
	assert.Equal(t, OutcomeWin, rec.Stay.Outcome)
	assert.Equal(t, OutcomeLose, rec.Switch.Outcome)
}

func TestPlayScenarioForcedReveal(t *testing.T) {
	// Car behind door 2, pick door 1: the host's reveal of door 3 is
	// forced and must consume no randomness.
	src := rng.NewScript(1, 0)

	rec, err := Play(src)
	require.NoError(t, err)

	assert.Equal(t, Assignment{PrizeGoat, PrizeCar, PrizeGoat}, rec.Assignment)
	assert.Equal(t, Door(1), rec.Pick)
	assert.Equal(t, Door(3), rec.Revealed)
	assert.Equal(t, Door(2), rec.Switch.Final)
	assert.Equal(t, OutcomeWin, rec.Switch.Outcome)
	assert.Equal(t, OutcomeLose, rec.Stay.Outcome)
	assert.Equal(t, 0, src.Remaining(), "forced reveal should not draw")
}

func TestRecordResult(t *testing.T) {
	rec, err := Play(rng.NewSeeded(6))
	require.NoError(t, err)

	assert.Equal(t, rec.Stay, rec.Result(StrategyStay))
	assert.Equal(t, rec.Switch, rec.Result(StrategySwitch))
}
