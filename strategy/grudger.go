package strategy

import "dilemma/game"

// Grudger cooperates until any opponent defects once, then defects forever.
type Grudger struct {
	betrayed bool
}

func (g *Grudger) Next(round int, _, opp1, opp2 game.History) game.Action {
	if round == 0 {
		return game.Cooperate
	}
	if !g.betrayed {
		if opp1[round-1] == game.Defect || opp2[round-1] == game.Defect {
			g.betrayed = true
		}
	}
	if g.betrayed {
		return game.Defect
	}
	return game.Cooperate
}

// Pavlov plays win-stay lose-shift: it repeats its previous action while the
// previous round paid above the threshold, and flips it otherwise.
type Pavlov struct {
	payoffs    game.PayoffTable
	lastAction game.Action
}

func NewPavlov() *Pavlov {
	return &Pavlov{payoffs: game.NewPayoffTable()}
}

const pavlovWinThreshold = 3

func (p *Pavlov) Next(round int, own, opp1, opp2 game.History) game.Action {
	if round == 0 {
		p.lastAction = game.Cooperate
		return p.lastAction
	}
	lastScore := p.payoffs.Payoff(own[round-1], opp1[round-1], opp2[round-1])
	if lastScore <= pavlovWinThreshold {
		p.lastAction = 1 - p.lastAction
	}
	return p.lastAction
}
