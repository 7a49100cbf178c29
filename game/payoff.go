package game

// PayoffTable maps the three simultaneous actions of a round to the payoff of
// the player in the first ("self") slot. It mirrors the two-player dilemma
// whenever one opponent's action is fixed, and is symmetric in the two
// opponent slots, which forces the unique ordering
//
//	U(DCC) > U(CCC) > U(DDC) > U(CDC) > U(DDD) > U(CDD)
//
// The table is constructed once and never mutated.
type PayoffTable [2][2][2]int

// NewPayoffTable returns the standard three-player dilemma table.
func NewPayoffTable() PayoffTable {
	return PayoffTable{
		{{6, 3}, // self and first opponent cooperate
			{3, 0}}, // self cooperates, first opponent defects
		{{8, 5}, // self defects, first opponent cooperates
			{5, 2}}, // self and first opponent defect
	}
}

// Payoff returns the self player's payoff for one round. All three actions
// must be valid; callers validate strategy output before looking it up.
func (p PayoffTable) Payoff(self, opp1, opp2 Action) int {
	return p[self][opp1][opp2]
}
