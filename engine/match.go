// Package engine runs a single match of the three-player iterated dilemma.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"dilemma/game"
)

// Seat labels participants within one match, in the order they were passed
// to Run. Error messages and match records refer to seats; mapping seats
// back to roster entries is the scheduler's job.
var seatNames = [3]string{"A", "B", "C"}

// Result holds the three average per-round scores of a match, in seat order.
type Result struct {
	Scores [3]float64
}

// Engine simulates matches against a fixed payoff table.
type Engine struct {
	payoffs game.PayoffTable
}

func New(payoffs game.PayoffTable) *Engine {
	return &Engine{payoffs: payoffs}
}

// Run plays one match of the given number of rounds among three freshly
// created strategies and returns each seat's average per-round payoff.
//
// Each round all three strategies are queried first, then payoffs are
// computed and histories extended, so no strategy ever observes a
// same-round action. Seat views rotate clockwise: A sees (HA, HB, HC),
// B sees (HB, HC, HA), C sees (HC, HA, HB). Several strategies treat their
// first opponent asymmetrically, so this rotation is a hard contract.
//
// A non-positive round count is rejected before any round runs. A strategy
// emitting an invalid action fails the whole match: a corrupted match cannot
// be partially trusted.
func (e *Engine) Run(a, b, c game.Strategy, rounds int) (Result, error) {
	if rounds <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}

	seats := [3]game.Strategy{a, b, c}
	var histories [3]game.History
	var sums [3]int

	log.Debug().Int("rounds", rounds).Msg("match started")

	for round := 0; round < rounds; round++ {
		var plays [3]game.Action
		for s, strategy := range seats {
			own := view(histories[s])
			opp1 := view(histories[(s+1)%3])
			opp2 := view(histories[(s+2)%3])

			action := strategy.Next(round, own, opp1, opp2)
			if !action.Valid() {
				return Result{}, fmt.Errorf("%w: seat %s returned %s in round %d",
					ErrInvalidAction, seatNames[s], action, round)
			}
			plays[s] = action
		}

		for s := range seats {
			sums[s] += e.payoffs.Payoff(plays[s], plays[(s+1)%3], plays[(s+2)%3])
			histories[s] = append(histories[s], plays[s])
		}
	}

	var result Result
	for s, sum := range sums {
		result.Scores[s] = float64(sum) / float64(rounds)
	}
	return result, nil
}

// view clamps a history's capacity so a misbehaving strategy appending to it
// cannot alias the engine's backing array.
func view(h game.History) game.History {
	return h[:len(h):len(h)]
}
