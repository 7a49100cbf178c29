package tournament

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dilemma/game"
)

func TestRank(t *testing.T) {
	t.Run("orders by score descending", func(t *testing.T) {
		require.Equal(t, []int{2, 0, 1}, Rank(Totals{5, 1, 9}))
	})

	t.Run("breaks ties by original roster order", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 0, 3}, Rank(Totals{10, 20, 20, 5}),
			"Index 1 should rank before index 2 on an exact tie")
	})

	t.Run("handles all-equal totals", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2}, Rank(Totals{7, 7, 7}),
			"All ties should preserve roster order")
	})

	t.Run("handles empty totals", func(t *testing.T) {
		require.Empty(t, Rank(Totals{}))
	})
}

func TestStandings(t *testing.T) {
	roster := []game.RosterEntry{
		{Name: "First"},
		{Name: "Second"},
		{Name: "Third"},
	}

	standings := Standings(roster, Totals{1.5, 8.25, 4})

	require.Equal(t, []Standing{
		{Index: 1, Name: "Second", Score: 8.25},
		{Index: 2, Name: "Third", Score: 4},
		{Index: 0, Name: "First", Score: 1.5},
	}, standings)
}
