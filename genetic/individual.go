package genetic

import (
	"reversi/config"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"golang.org/x/exp/rand"
)

const (
	initialRandomWeight = 0.4 // Upper bound of a fresh random weight
	stabilityActive     = 0.2 // Stability weight above which the depth cap applies
)

// Individual is a candidate bot. It is a plain value, so copies never share state.
type Individual struct {
	Weights  game.Weights
	MaxDepth int
	Fitness  float64 // Mean match score of the last tournament, in [0, 1]
}

// NewRandomIndividual draws every weight uniformly from [0, 1), the random weight from
// [0, 0.4) and a depth uniformly from the configured range. Bots that weigh stability
// draw from a range capped at StabilityDepthCap.
func NewRandomIndividual(cfg config.Config, rng *rand.Rand) Individual {
	var ind Individual
	for k := range ind.Weights {
		ind.Weights[k] = rng.Float64()
	}
	ind.Weights[game.Random] = rng.Float64() * initialRandomWeight

	maxDepth := cfg.MaxDepth
	if ind.Weights[game.Stability] > stabilityActive {
		maxDepth = min(maxDepth, cfg.StabilityDepthCap)
	}
	ind.MaxDepth = cfg.MinDepth + rng.Intn(maxDepth-cfg.MinDepth+1)
	return ind
}

// Bot returns a searching agent playing with the individual's genes.
func (ind Individual) Bot(rng *rand.Rand, options ...searcher.Option) *agent.Bot {
	return agent.NewBot(ind.Weights, ind.MaxDepth, rng, options...)
}
