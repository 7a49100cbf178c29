package game

import "golang.org/x/exp/rand"

// Strategy is the decision rule of one match participant. An instance is
// scoped to exactly one match: it is created fresh immediately before the
// match and discarded after, so internal state never leaks between matches.
type Strategy interface {
	// Next returns the action for the round about to be played. round is
	// zero-based; the three histories cover rounds 0..round-1 and are all
	// exactly round entries long, seen from this participant's seat: own is
	// its own history, opp1 the next seat clockwise, opp2 the seat after
	// that. Implementations must not mutate the histories.
	Next(round int, own, opp1, opp2 History) Action
}

// Factory produces a fresh Strategy instance for one match. The generator is
// private to that match; strategies that randomize must draw from it rather
// than any global source.
type Factory func(rng *rand.Rand) Strategy

// RosterEntry is one strategy kind eligible for the tournament: a display
// name plus a factory for per-match instances.
type RosterEntry struct {
	Name string
	New  Factory
}
