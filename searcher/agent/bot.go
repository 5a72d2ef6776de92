package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

// Bot plays with a fixed weight vector and search depth.
type Bot struct {
	weights  game.Weights
	depth    int
	rng      *rand.Rand
	searcher *searcher.AlphaBeta
}

// NewBot returns a bot searching depth plies. rng feeds both the random evaluation
// term and the stochastic move pick; nil uses a fixed seed.
func NewBot(weights game.Weights, depth int, rng *rand.Rand, options ...searcher.Option) *Bot {
	if depth < 1 {
		panic("bot depth must be positive")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	options = append([]searcher.Option{searcher.WithDepth(depth), searcher.WithRand(rng)}, options...)
	return &Bot{
		weights:  weights,
		depth:    depth,
		rng:      rng,
		searcher: searcher.NewAlphaBeta(options...),
	}
}

func (b *Bot) Weights() game.Weights {
	return b.weights
}

func (b *Bot) Depth() int {
	return b.depth
}

// Stochastic reports whether the bot ignores scores and plays uniformly at random.
func (b *Bot) Stochastic() bool {
	return b.weights[game.Random] == game.StochasticSentinel
}

// MakeMove returns the bot's move for state, or false when it has to pass.
func (b *Bot) MakeMove(state *game.GameState) (game.Move, bool) {
	move, ok, _ := b.FindMove(state)
	return move, ok
}

func (b *Bot) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	// The caller's state keeps its own weights; the search runs on a copy.
	root := state.Clone()
	root.Weights = b.weights
	root.Noise = b.rng

	result, metric := b.searcher.Search(root)
	return result.Move, result.OK, metric
}
