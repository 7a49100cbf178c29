package strategy

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
)

// DefaultRoster returns the tournament roster in its canonical order. Order
// matters: roster indices identify strategies in totals and reports, and the
// ranker breaks ties by original roster position.
func DefaultRoster() []game.RosterEntry {
	return []game.RosterEntry{
		{Name: "Nice", New: func(*rand.Rand) game.Strategy { return Nice{} }},
		{Name: "Nasty", New: func(*rand.Rand) game.Strategy { return Nasty{} }},
		{Name: "Random", New: func(rng *rand.Rand) game.Strategy { return &Random{rng: rng} }},
		{Name: "Tolerant", New: func(*rand.Rand) game.Strategy { return Tolerant{} }},
		{Name: "Freaky", New: func(rng *rand.Rand) game.Strategy { return NewFreaky(rng) }},
		{Name: "TitForTat", New: func(rng *rand.Rand) game.Strategy { return &TitForTat{rng: rng} }},
		{Name: "Grudger", New: func(*rand.Rand) game.Strategy { return &Grudger{} }},
		{Name: "Pavlov", New: func(*rand.Rand) game.Strategy { return NewPavlov() }},
		{Name: "MajorityRule", New: func(rng *rand.Rand) game.Strategy { return &MajorityRule{rng: rng} }},
		{Name: "ForgivingTitForTat", New: func(*rand.Rand) game.Strategy { return &ForgivingTitForTat{} }},
		{Name: "TitForTwoTats", New: func(*rand.Rand) game.Strategy { return TitForTwoTats{} }},
		{Name: "AlternatingTitForTats", New: func(*rand.Rand) game.Strategy { return NewAlternatingTitForTats() }},
	}
}
