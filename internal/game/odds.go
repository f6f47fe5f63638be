package game

// Odds is the exact win breakdown over every equally likely way a game
// can unfold, with no sampling involved.
type Odds struct {
	Strategies  []Strategy       `json:"strategies"`
	WinWorlds   map[Strategy]int `json:"win_worlds"`
	TotalWorlds int              `json:"total_worlds"`
}

// WinProbability returns the exact win probability for strat.
func (o Odds) WinProbability(strat Strategy) float64 {
	if o.TotalWorlds == 0 {
		return 0
	}
	return float64(o.WinWorlds[strat]) / float64(o.TotalWorlds)
}

// ExactOdds enumerates the full game space as equally weighted worlds:
// 3 car positions x 3 picks x 2 host options. When the host's reveal is
// forced the single option counts twice, keeping every world at the
// same weight. Each world runs through the same resolution pipeline the
// simulator uses, so the enumeration doubles as a cross-check of it.
func ExactOdds() Odds {
	odds := Odds{
		Strategies: Strategies(),
		WinWorlds:  make(map[Strategy]int, len(Strategies())),
	}

	for car := Door(1); car <= NumDoors; car++ {
		var a Assignment
		for i := range a {
			a[i] = PrizeGoat
		}
		a[car-1] = PrizeCar

		for pick := Door(1); pick <= NumDoors; pick++ {
			for _, revealed := range hostOptions(a, pick) {
				for _, strat := range odds.Strategies {
					final, err := ApplyStrategy(strat, pick, revealed)
					if err != nil {
						// Enumeration only visits valid worlds.
						panic(err)
					}
					outcome, err := Judge(a, final)
					if err != nil {
						panic(err)
					}
					if outcome == OutcomeWin {
						odds.WinWorlds[strat]++
					}
				}
				odds.TotalWorlds++
			}
		}
	}

	return odds
}

// hostOptions lists the host's possible reveals for one world, with the
// forced reveal repeated so every (car, pick) cell spans two worlds.
func hostOptions(a Assignment, pick Door) []Door {
	var goats []Door
	for d := Door(1); d <= NumDoors; d++ {
		if d != pick && a.Behind(d) == PrizeGoat {
			goats = append(goats, d)
		}
	}
	if len(goats) == 1 {
		return []Door{goats[0], goats[0]}
	}
	return goats
}
