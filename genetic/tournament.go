package genetic

import (
	"context"
	"reversi/engine"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// AgentFactory builds the agent that plays for ind in one match.
type AgentFactory func(ind Individual, rng *rand.Rand) agent.Agent

type TournamentOption func(t *Tournament)

func WithAgentFactory(factory AgentFactory) TournamentOption {
	return func(t *Tournament) {
		if factory != nil {
			t.factory = factory
		}
	}
}

// WithWorkers sets how many matches run at the same time. With more than one worker
// the agent factory and the match options, a clock in particular, are shared by
// concurrent matches and must be safe for concurrent use.
func WithWorkers(workers int) TournamentOption {
	return func(t *Tournament) {
		if workers > 0 {
			t.workers = workers
		}
	}
}

// WithMatchOptions passes options on to every game, e.g. a clock. The same options
// serve every match, see WithWorkers.
func WithMatchOptions(options ...engine.Option) TournamentOption {
	return func(t *Tournament) {
		t.matchOptions = append(t.matchOptions, options...)
	}
}

// Tournament is a round robin in which every individual meets every other one as black.
type Tournament struct {
	gamesPerMatch int
	budget        time.Duration
	workers       int
	factory       AgentFactory
	matchOptions  []engine.Option
}

func NewTournament(gamesPerMatch int, budget time.Duration, options ...TournamentOption) *Tournament {
	t := &Tournament{ // Default values
		gamesPerMatch: gamesPerMatch,
		budget:        budget,
		workers:       1,
		factory: func(ind Individual, rng *rand.Rand) agent.Agent {
			return ind.Bot(rng)
		},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

type pairing struct {
	black, white int
	seed         uint64
}

// Run plays a match for every ordered pair and sets each individual's fitness to the
// mean of its scores as black. Seeds are drawn in pair order before any match starts,
// so the result does not depend on the number of workers. Cancelling ctx stops the
// tournament before the next match and leaves the fitness untouched.
func (t *Tournament) Run(ctx context.Context, p Population, rng *rand.Rand) error {
	n := len(p)
	if n < 2 {
		return nil
	}

	pairings := make([]pairing, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				pairings = append(pairings, pairing{black: i, white: j, seed: rng.Uint64()})
			}
		}
	}

	scores := make([]float64, len(pairings))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for k, pair := range pairings {
		k, pair := k, pair // per-iteration copy (go 1.21 loop variable semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matchRng := rand.New(rand.NewSource(pair.seed))
			black := t.factory(p[pair.black], rand.New(rand.NewSource(matchRng.Uint64())))
			white := t.factory(p[pair.white], rand.New(rand.NewSource(matchRng.Uint64())))

			result := engine.NewMatch(black, white, t.gamesPerMatch, t.budget, t.matchOptions...).Play()
			scores[k] = result.Score
			log.Debug().Msgf("match %d vs %d: %.2f", pair.black, pair.white, result.Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	totals := make([]float64, n)
	for k, pair := range pairings {
		totals[pair.black] += scores[k]
	}
	for i := range p {
		p[i].Fitness = totals[i] / float64(n-1)
	}
	return nil
}
