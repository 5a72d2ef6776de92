package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly drawn legal move.
func NewRandomAgent(rng *rand.Rand) Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric) {
	moves := state.ValidMoves()
	if len(moves) == 0 {
		return game.Move{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], true, metrics.SearchMetric{}
}

// NewGreedyAgent returns a one ply bot that maximizes its disc count.
func NewGreedyAgent() Agent {
	var w game.Weights
	w[game.CoinParity] = 1
	return NewBot(w, 1, nil)
}
