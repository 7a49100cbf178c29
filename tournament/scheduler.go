// Package tournament schedules matches over a roster and aggregates scores.
package tournament

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"dilemma/engine"
	"dilemma/game"
)

// Totals accumulates each roster entry's score across the tournament,
// indexed by roster position.
type Totals []float64

// MatchRecord describes one completed match: which roster entries sat in
// seats A, B, C, how many rounds they played, and each seat's average score.
type MatchRecord struct {
	Seq     int // position in schedule order
	Players [3]int
	Rounds  int
	Scores  [3]float64
}

type triple struct {
	seq     int
	players [3]int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWorkers sets the number of concurrent match workers. The default of 1
// runs matches sequentially in schedule order.
func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSeed sets the master seed. Match m in schedule order always draws from
// a generator seeded seed+m, so results are reproducible and independent of
// the worker count.
func WithSeed(seed uint64) Option {
	return func(s *Scheduler) {
		s.seed = seed
	}
}

// WithRoundsRange sets the inclusive bounds the per-match round count is
// drawn from.
func WithRoundsRange(min, max int) Option {
	return func(s *Scheduler) {
		if min > 0 && max >= min {
			s.minRounds = min
			s.maxRounds = max
		}
	}
}

const (
	defaultMinRounds = 90
	defaultMaxRounds = 110
	defaultSeed      = 1
)

// Scheduler plays every size-3 combination with repetition of the roster
// exactly once and accumulates the resulting averages.
type Scheduler struct {
	engine    *engine.Engine
	roster    []game.RosterEntry
	workers   int
	seed      uint64
	minRounds int
	maxRounds int
}

func New(roster []game.RosterEntry, options ...Option) *Scheduler {
	s := &Scheduler{
		engine:    engine.New(game.NewPayoffTable()),
		roster:    roster,
		workers:   1,
		seed:      defaultSeed,
		minRounds: defaultMinRounds,
		maxRounds: defaultMaxRounds,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run plays the full schedule and returns the accumulated totals plus one
// record per match in schedule order. Any match failure aborts the whole
// tournament: totals containing a corrupted match cannot be trusted.
//
// An empty roster yields no matches and empty totals. A single-entry roster
// still plays one match, the all-same-index triple.
func (s *Scheduler) Run() (Totals, []MatchRecord, error) {
	totals := make(Totals, len(s.roster))
	triples := s.schedule()

	log.Info().
		Int("roster", len(s.roster)).
		Int("matches", len(triples)).
		Int("workers", s.workers).
		Msg("starting tournament")

	if len(triples) == 0 {
		return totals, nil, nil
	}

	records := make([]MatchRecord, len(triples))
	var err error
	if s.workers <= 1 {
		err = s.runSequential(triples, totals, records)
	} else {
		err = s.runParallel(triples, totals, records)
	}
	if err != nil {
		return nil, nil, err
	}

	log.Info().Int("matches", len(records)).Msg("completed tournament")
	return totals, records, nil
}

// schedule enumerates every triple 0 <= i <= j <= k < R exactly once, in
// non-decreasing lexicographic order. Duplicate indices are deliberate: two
// or three copies of the same strategy play each other too.
func (s *Scheduler) schedule() []triple {
	r := len(s.roster)
	var triples []triple
	seq := 0
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			for k := j; k < r; k++ {
				triples = append(triples, triple{seq: seq, players: [3]int{i, j, k}})
				seq++
			}
		}
	}
	return triples
}

func (s *Scheduler) runSequential(triples []triple, totals Totals, records []MatchRecord) error {
	for _, t := range triples {
		record, err := s.play(t)
		if err != nil {
			return err
		}
		records[t.seq] = record
		for seat, index := range t.players {
			totals[index] += record.Scores[seat]
		}
	}
	return nil
}

// runParallel fans the schedule out to a pool of workers, each merging into
// a private partial totals slice. Records land in disjoint slots keyed by
// sequence number, so the output is identical to the sequential path.
func (s *Scheduler) runParallel(triples []triple, totals Totals, records []MatchRecord) error {
	jobs := make(chan triple)
	done := make(chan struct{})

	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			close(done)
		})
	}

	go func() {
		defer close(jobs)
		for _, t := range triples {
			select {
			case jobs <- t:
			case <-done:
				return
			}
		}
	}()

	partials := make([]Totals, s.workers)
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		partial := make(Totals, len(s.roster))
		partials[w] = partial

		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				record, err := s.play(t)
				if err != nil {
					fail(err)
					return
				}
				records[t.seq] = record
				for seat, index := range t.players {
					partial[index] += record.Scores[seat]
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	for _, partial := range partials {
		for index, score := range partial {
			totals[index] += score
		}
	}
	return nil
}

// play runs one match with fresh strategy instances and a private generator.
func (s *Scheduler) play(t triple) (MatchRecord, error) {
	rng := rand.New(rand.NewSource(s.seed + uint64(t.seq)))
	rounds := s.minRounds + rng.Intn(s.maxRounds-s.minRounds+1)

	i, j, k := t.players[0], t.players[1], t.players[2]
	a := s.roster[i].New(rng)
	b := s.roster[j].New(rng)
	c := s.roster[k].New(rng)

	result, err := s.engine.Run(a, b, c, rounds)
	if err != nil {
		return MatchRecord{}, fmt.Errorf("match %d (%s, %s, %s): %w",
			t.seq, s.roster[i].Name, s.roster[j].Name, s.roster[k].Name, err)
	}

	log.Debug().
		Int("match", t.seq).
		Str("a", s.roster[i].Name).
		Str("b", s.roster[j].Name).
		Str("c", s.roster[k].Name).
		Int("rounds", rounds).
		Floats64("scores", result.Scores[:]).
		Msg("completed match")

	return MatchRecord{
		Seq:     t.seq,
		Players: t.players,
		Rounds:  rounds,
		Scores:  result.Scores,
	}, nil
}
