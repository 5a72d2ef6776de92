package genetic

import (
	"cmp"
	"reversi/config"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Population []Individual

func NewRandomPopulation(cfg config.Config, rng *rand.Rand) Population {
	p := make(Population, cfg.PopulationSize)
	for i := range p {
		p[i] = NewRandomIndividual(cfg, rng)
	}
	return p
}

// SortByFitness orders by descending fitness. Equal individuals keep their order.
func (p Population) SortByFitness() {
	slices.SortStableFunc(p, func(a, b Individual) int {
		return cmp.Compare(b.Fitness, a.Fitness)
	})
}

func (p Population) MeanFitness() float64 {
	if len(p) == 0 {
		return 0
	}
	return lo.SumBy(p, func(ind Individual) float64 { return ind.Fitness }) / float64(len(p))
}

func (p Population) Clone() Population {
	return slices.Clone(p)
}
