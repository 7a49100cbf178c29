package strategy

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
)

// TitForTat cooperates first, then mirrors the previous action of a randomly
// picked opponent each round.
type TitForTat struct {
	rng *rand.Rand
}

func (t *TitForTat) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round == 0 {
		return game.Cooperate
	}
	if t.rng.Float64() < 0.5 {
		return opp1[round-1]
	}
	return opp2[round-1]
}

// ForgivingTitForTat retaliates against a defection once, then cooperates on
// the next provocation as an offer of peace before arming again.
type ForgivingTitForTat struct {
	readyToForgive bool
}

func (f *ForgivingTitForTat) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round == 0 {
		return game.Cooperate
	}
	if opp1[round-1] == game.Defect || opp2[round-1] == game.Defect {
		if f.readyToForgive {
			f.readyToForgive = false
			return game.Cooperate
		}
		f.readyToForgive = true
		return game.Defect
	}
	f.readyToForgive = false
	return game.Cooperate
}

// TitForTwoTats defects only when some opponent defected in both of the last
// two rounds.
type TitForTwoTats struct{}

func (TitForTwoTats) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round < 2 {
		return game.Cooperate
	}
	twice := func(h game.History) bool {
		return h[round-1] == game.Defect && h[round-2] == game.Defect
	}
	if twice(opp1) || twice(opp2) {
		return game.Defect
	}
	return game.Cooperate
}

// AlternatingTitForTats alternates between a one-defection trigger and a
// two-consecutive-defections trigger, switching mode after each retaliation
// or fully cooperative round.
type AlternatingTitForTats struct {
	threshold int
}

func NewAlternatingTitForTats() *AlternatingTitForTats {
	return &AlternatingTitForTats{threshold: 1}
}

func (a *AlternatingTitForTats) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round == 0 {
		return game.Cooperate
	}

	defect := false
	switch a.threshold {
	case 1:
		defect = opp1[round-1] == game.Defect || opp2[round-1] == game.Defect
	case 2:
		if round >= 2 {
			defect = (opp1[round-1] == game.Defect && opp1[round-2] == game.Defect) ||
				(opp2[round-1] == game.Defect && opp2[round-2] == game.Defect)
		}
	}

	bothCooperated := opp1[round-1] == game.Cooperate && opp2[round-1] == game.Cooperate
	if defect || bothCooperated {
		if a.threshold == 1 {
			a.threshold = 2
		} else {
			a.threshold = 1
		}
	}

	if defect {
		return game.Defect
	}
	return game.Cooperate
}
