package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"dilemma/game"
)

func history(actions ...game.Action) game.History {
	return actions
}

func TestBasicStrategies(t *testing.T) {
	t.Run("Nice always cooperates", func(t *testing.T) {
		s := Nice{}
		require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))
		require.Equal(t, game.Cooperate,
			s.Next(5, history(game.Defect), history(game.Defect), history(game.Defect)))
	})

	t.Run("Nasty always defects", func(t *testing.T) {
		s := Nasty{}
		require.Equal(t, game.Defect, s.Next(0, nil, nil, nil))
	})

	t.Run("Freaky commits to one action for the whole match", func(t *testing.T) {
		s := NewFreaky(rand.New(rand.NewSource(3)))
		first := s.Next(0, nil, nil, nil)
		for round := 1; round < 50; round++ {
			require.Equal(t, first, s.Next(round, nil, nil, nil),
				"Freaky should never change its mind mid-match")
		}
	})

	t.Run("Random draws only from its own generator", func(t *testing.T) {
		a := &Random{rng: rand.New(rand.NewSource(7))}
		b := &Random{rng: rand.New(rand.NewSource(7))}
		for round := 0; round < 50; round++ {
			require.Equal(t, a.Next(round, nil, nil, nil), b.Next(round, nil, nil, nil),
				"Identically seeded instances should play identically")
		}
	})
}

func TestTitForTat(t *testing.T) {
	t.Run("cooperates in the first round", func(t *testing.T) {
		s := &TitForTat{rng: rand.New(rand.NewSource(1))}
		require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))
	})

	t.Run("mirrors when both opponents agree", func(t *testing.T) {
		s := &TitForTat{rng: rand.New(rand.NewSource(1))}
		got := s.Next(1, history(game.Cooperate), history(game.Defect), history(game.Defect))
		require.Equal(t, game.Defect, got,
			"With agreeing opponents the random pick cannot matter")
	})
}

func TestTolerant(t *testing.T) {
	t.Run("cooperates while defections are not the majority", func(t *testing.T) {
		s := Tolerant{}
		own := history(game.Cooperate, game.Cooperate)
		got := s.Next(2,
			own,
			history(game.Cooperate, game.Cooperate),
			history(game.Defect, game.Cooperate))
		require.Equal(t, game.Cooperate, got, "1 defection out of 4 actions is tolerated")
	})

	t.Run("defects once defections dominate", func(t *testing.T) {
		s := Tolerant{}
		own := history(game.Cooperate, game.Cooperate)
		got := s.Next(2,
			own,
			history(game.Defect, game.Defect),
			history(game.Defect, game.Cooperate))
		require.Equal(t, game.Defect, got, "3 defections out of 4 actions is too many")
	})
}

func TestGrudger(t *testing.T) {
	t.Run("holds the grudge forever", func(t *testing.T) {
		s := &Grudger{}
		require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))

		got := s.Next(1, history(game.Cooperate), history(game.Defect), history(game.Cooperate))
		require.Equal(t, game.Defect, got, "One defection should trigger the grudge")

		got = s.Next(2,
			history(game.Cooperate, game.Defect),
			history(game.Defect, game.Cooperate),
			history(game.Cooperate, game.Cooperate))
		require.Equal(t, game.Defect, got, "Cooperation afterwards should not be forgiven")
	})

	t.Run("keeps cooperating against cooperators", func(t *testing.T) {
		s := &Grudger{}
		for round := 0; round < 10; round++ {
			coop := make(game.History, round)
			got := s.Next(round, coop, coop, coop)
			require.Equal(t, game.Cooperate, got)
		}
	})
}

func TestPavlov(t *testing.T) {
	s := NewPavlov()

	require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil),
		"Pavlov should open by cooperating")

	// Round 0 ended CCC: payoff 6 is a win, so stay on cooperate.
	got := s.Next(1, history(game.Cooperate), history(game.Cooperate), history(game.Cooperate))
	require.Equal(t, game.Cooperate, got, "Win should mean stay")

	// Round 1 ended CDD: payoff 0 is a loss, so shift to defect.
	got = s.Next(2,
		history(game.Cooperate, game.Cooperate),
		history(game.Cooperate, game.Defect),
		history(game.Cooperate, game.Defect))
	require.Equal(t, game.Defect, got, "Loss should mean shift")
}

func TestForgivingTitForTat(t *testing.T) {
	s := &ForgivingTitForTat{}

	require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))

	got := s.Next(1, history(game.Cooperate), history(game.Defect), history(game.Cooperate))
	require.Equal(t, game.Defect, got, "First provocation should be punished")

	got = s.Next(2,
		history(game.Cooperate, game.Defect),
		history(game.Defect, game.Defect),
		history(game.Cooperate, game.Cooperate))
	require.Equal(t, game.Cooperate, got, "Second consecutive provocation should be forgiven")
}

func TestTitForTwoTats(t *testing.T) {
	s := TitForTwoTats{}

	require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))
	require.Equal(t, game.Cooperate,
		s.Next(1, history(game.Cooperate), history(game.Defect), history(game.Cooperate)),
		"A single defection should be let slide")

	got := s.Next(2,
		history(game.Cooperate, game.Cooperate),
		history(game.Defect, game.Defect),
		history(game.Cooperate, game.Cooperate))
	require.Equal(t, game.Defect, got, "Two consecutive defections should be punished")
}

func TestMajorityRule(t *testing.T) {
	s := &MajorityRule{rng: rand.New(rand.NewSource(1))}

	require.Equal(t, game.Cooperate, s.Next(0, nil, nil, nil))
	require.Equal(t, game.Defect,
		s.Next(1, history(game.Cooperate), history(game.Defect), history(game.Defect)),
		"Both opponents defecting should force a defection")
	require.Equal(t, game.Cooperate,
		s.Next(1, history(game.Cooperate), history(game.Cooperate), history(game.Cooperate)),
		"Both opponents cooperating should keep cooperation")
}

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()
	require.NotEmpty(t, roster)

	names := map[string]bool{}
	rng := rand.New(rand.NewSource(1))
	for _, entry := range roster {
		require.NotEmpty(t, entry.Name)
		require.False(t, names[entry.Name], "Roster names should be unique")
		names[entry.Name] = true

		first := entry.New(rng)
		second := entry.New(rng)
		require.NotNil(t, first)
		require.NotNil(t, second)
	}
}
