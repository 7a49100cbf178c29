// Package strategy provides the roster of decision rules for the tournament.
//
// Every strategy implements game.Strategy and is built fresh per match via
// its factory; randomized strategies draw only from the generator handed to
// the factory, never a global source.
package strategy

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
)

// Nice always cooperates.
type Nice struct{}

func (Nice) Next(int, game.History, game.History, game.History) game.Action {
	return game.Cooperate
}

// Nasty always defects.
type Nasty struct{}

func (Nasty) Next(int, game.History, game.History, game.History) game.Action {
	return game.Defect
}

// Random picks a fresh coin flip every round.
type Random struct {
	rng *rand.Rand
}

func (r *Random) Next(int, game.History, game.History, game.History) game.Action {
	if r.rng.Float64() < 0.5 {
		return game.Cooperate
	}
	return game.Defect
}

// Freaky flips one coin at match start and plays that action forever.
type Freaky struct {
	action game.Action
}

func NewFreaky(rng *rand.Rand) *Freaky {
	action := game.Cooperate
	if rng.Float64() >= 0.5 {
		action = game.Defect
	}
	return &Freaky{action: action}
}

func (f *Freaky) Next(int, game.History, game.History, game.History) game.Action {
	return f.action
}
