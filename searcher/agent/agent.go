package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Agent interface {
	// FindMove returns the chosen move, false when the side to move must pass, and the
	// search metrics (zero unless collected).
	FindMove(state *game.GameState) (game.Move, bool, metrics.SearchMetric)
}
