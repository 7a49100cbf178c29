package strategy

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
)

// Tolerant defects only once defections form the majority of all opponent
// actions seen so far.
type Tolerant struct{}

func (Tolerant) Next(round int, _, opp1, opp2 game.History) game.Action {
	coop, defect := 0, 0
	for i := 0; i < round; i++ {
		if opp1[i] == game.Cooperate {
			coop++
		} else {
			defect++
		}
		if opp2[i] == game.Cooperate {
			coop++
		} else {
			defect++
		}
	}
	if defect > coop {
		return game.Defect
	}
	return game.Cooperate
}

// MajorityRule follows the majority of the previous round: defects when both
// opponents defected, cooperates when both cooperated, coin-flips a split.
type MajorityRule struct {
	rng *rand.Rand
}

func (m *MajorityRule) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round == 0 {
		return game.Cooperate
	}
	defections := 0
	if opp1[round-1] == game.Defect {
		defections++
	}
	if opp2[round-1] == game.Defect {
		defections++
	}
	switch defections {
	case 2:
		return game.Defect
	case 1:
		if m.rng.Float64() < 0.5 {
			return game.Cooperate
		}
		return game.Defect
	default:
		return game.Cooperate
	}
}
