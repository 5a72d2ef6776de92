package genetic

import (
	"math"
	"reversi/config"
	"reversi/game"
	"reversi/utils"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Select runs a tournament among size distinct individuals drawn uniformly and returns
// the fittest. The first one drawn wins ties.
func Select(p Population, size int, rng *rand.Rand) Individual {
	size = utils.Clamp(size, 1, len(p))
	contestants := lo.Map(rng.Perm(len(p))[:size], func(i int, _ int) Individual {
		return p[i]
	})
	return lo.MaxBy(contestants, func(a, b Individual) bool {
		return a.Fitness > b.Fitness
	})
}

// Crossover takes every weight from either parent with even odds. The depth comes
// whole from one of them.
func Crossover(a, b Individual, rng *rand.Rand) Individual {
	var child Individual
	for k := range child.Weights {
		if rng.Float64() < 0.5 {
			child.Weights[k] = a.Weights[k]
		} else {
			child.Weights[k] = b.Weights[k]
		}
	}
	if rng.Float64() < 0.5 {
		child.MaxDepth = a.MaxDepth
	} else {
		child.MaxDepth = b.MaxDepth
	}
	return child
}

// maxRandomWeight keeps a mutated random weight below the stochastic sentinel.
var maxRandomWeight = math.Nextafter(game.StochasticSentinel, 0)

// Mutate shifts each weight with probability MutationRate by up to MutationRange in
// either direction, and the depth by one step under the same probability. Results are
// clamped to [0, 1] and the depth range. A mutated random weight stays below 1 so
// mutation never turns a bot stochastic.
func Mutate(ind Individual, cfg config.Config, rng *rand.Rand) Individual {
	for k, w := range ind.Weights {
		if rng.Float64() < cfg.MutationRate {
			delta := (rng.Float64()*2 - 1) * cfg.MutationRange
			upper := 1.0
			if k == game.Random {
				upper = maxRandomWeight
			}
			ind.Weights[k] = utils.Clamp(w+delta, 0, upper)
		}
	}
	if rng.Float64() < cfg.MutationRate {
		ind.MaxDepth = utils.Clamp(ind.MaxDepth+rng.Intn(3)-1, cfg.MinDepth, cfg.MaxDepth)
	}
	return ind
}
