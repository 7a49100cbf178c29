package tournament

import (
	"sort"

	"dilemma/game"
)

// Standing is one leaderboard row.
type Standing struct {
	Index int // roster position
	Name  string
	Score float64
}

// Rank orders roster indices by total score, highest first. The sort is
// stable, so entries with exactly equal totals keep their original roster
// order (first seen, first ranked).
func Rank(totals Totals) []int {
	order := make([]int, len(totals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})
	return order
}

// Standings resolves a ranking into displayable leaderboard rows.
func Standings(roster []game.RosterEntry, totals Totals) []Standing {
	order := Rank(totals)
	standings := make([]Standing, len(order))
	for place, index := range order {
		standings[place] = Standing{
			Index: index,
			Name:  roster[index].Name,
			Score: totals[index],
		}
	}
	return standings
}
