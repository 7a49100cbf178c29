package engine

import "errors"

// Sentinel error kinds for this package. Callers branch with errors.Is.
var (
	// ErrInvalidRounds reports a non-positive round count.
	ErrInvalidRounds = errors.New("round count must be positive")

	// ErrInvalidAction reports a strategy emitting something outside
	// {Cooperate, Defect}. The match is unrecoverable at that point.
	ErrInvalidAction = errors.New("strategy returned invalid action")
)
