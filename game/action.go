package game

import "fmt"

// Action is one participant's choice in a single round.
type Action int

const (
	Cooperate Action = iota
	Defect
)

// Valid reports whether a is one of the two playable actions. Anything else
// is a contract violation by the strategy that produced it and must never be
// used as a payoff table index.
func (a Action) Valid() bool {
	return a == Cooperate || a == Defect
}

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// History is the ordered sequence of one participant's past actions within
// the current match. Index i holds the action chosen in round i.
type History []Action
