package simulation

import (
	"context"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/LegendaryBo/holdem-calculator/internal/deck"
	"github.com/LegendaryBo/holdem-calculator/internal/randutil"
	"github.com/LegendaryBo/holdem-calculator/poker"
)

// Simulator estimates the winning frequency of every starting-hand class
// by dealing random full-table hold 'em hands.
//
// Each trial shuffles a deck, deals five community cards once into an
// accumulated community hand, then deals two hole cards per player. A
// player's 7-card hand is the community hand plus their hole cards: plain
// Hand addition, never a rebuild. Because the best hand among the first p
// players is tracked incrementally, a single trial yields an outcome for
// every table size 2..Players simultaneously.
type Simulator struct {
	players int
	trials  int
	workers int
}

// NewSimulator creates a simulator for the given settings; the settings
// must have been validated.
func NewSimulator(settings SimulationSettings) *Simulator {
	workers := settings.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Simulator{
		players: settings.Players,
		trials:  settings.Trials,
		workers: workers,
	}
}

// Run executes the configured number of trials, splitting them across
// workers. Each worker owns an independent RNG seeded from the master
// seed and a private Results, merged once at the end; workers share no
// mutable state. The context cancels the run early.
func (s *Simulator) Run(ctx context.Context, seed int64) (*Results, error) {
	master := randutil.New(seed)

	workers := s.workers
	if workers > s.trials {
		workers = s.trials
	}
	if workers < 1 {
		workers = 1
	}
	perWorker := s.trials / workers
	remainder := s.trials % workers

	results := make([]*Results, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		workerSeed := master.Int64()
		out := &Results{Players: s.players}
		results[w] = out

		g.Go(func() error {
			return s.runWorker(ctx, out, trials, randutil.New(workerSeed))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Results{Players: s.players}
	for _, r := range results {
		total.merge(r)
	}
	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, out *Results, trials int, rng *rand.Rand) error {
	d := deck.New(rng)

	// Winner bookkeeping per table size. Ties are tracked explicitly:
	// every class sharing the best hand gets a tie, a sole best hand
	// gets a win.
	var classes [MaxPlayers]HoleClass
	var leaders [MaxPlayers]HoleClass
	players := s.players

	for trial := 0; trial < trials; trial++ {
		if trial%1024 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		d.Shuffle()
		community := poker.NewHand(d.Deal(5)...)

		var best poker.HandStrength
		numLeaders := 0

		for p := 0; p < players; p++ {
			hole := d.Deal(2)
			class := ClassOf(hole[0], hole[1])
			classes[p] = class
			strength := poker.Evaluate(community.Add(poker.NewHand(hole...)))

			// At a table of p+1 players every class dealt so far
			// was in play.
			for _, c := range classes[:p+1] {
				out.Classes[c].Occurrences[p]++
			}

			switch {
			case p == 0 || strength.Beats(best):
				best = strength
				leaders[0] = class
				numLeaders = 1
			case strength == best:
				leaders[numLeaders] = class
				numLeaders++
			}

			// Record the outcome for a table of p+1 players.
			if numLeaders == 1 {
				out.Classes[leaders[0]].Wins[p]++
			} else {
				for _, l := range leaders[:numLeaders] {
					out.Classes[l].Ties[p]++
				}
			}
		}

		out.Trials++
	}
	return nil
}
