package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// node is one vertex of the search tree. Nodes live on the recursion stack, except
// for the root children which the caller keeps in a slice until the move is chosen.
type node struct {
	state *game.GameState
	move  game.Move
	depth int // Plies left below this node
	role  Role
	alpha float64
	beta  float64
	value float64
}

// tree holds what every node of one search shares.
type tree struct {
	pruning bool
	metrics metrics.Collector
}

func (t *tree) expand(n *node) float64 {
	t.metrics.AddNode()

	if n.depth == 0 {
		return t.leaf(n)
	}
	moves := n.state.ValidMoves()
	if len(moves) == 0 {
		return t.leaf(n)
	}

	value := n.role.worst()
	for i, move := range moves {
		child := node{
			state: simulate(n.state, move),
			move:  move,
			depth: n.depth - 1,
			role:  n.role.Flip(),
			alpha: n.alpha,
			beta:  n.beta,
		}
		childValue := t.expand(&child)

		cut := false
		switch n.role {
		case Maximizing:
			value = max(value, childValue)
			n.alpha = max(n.alpha, value)
			cut = value >= n.beta
		case Minimizing:
			value = min(value, childValue)
			n.beta = min(n.beta, value)
			cut = value <= n.alpha
		}
		if cut && t.pruning && i < len(moves)-1 {
			t.metrics.AddCutoff()
			break
		}
	}

	n.value = value
	return value
}

func (t *tree) leaf(n *node) float64 {
	t.metrics.AddLeaf()
	n.value = n.state.Score(n.state.Turn)
	return n.value
}

// simulate returns a copy of state after the side to move plays m. The turn is not
// handed over, so every ply expands the searching side's own moves.
func simulate(state *game.GameState, m game.Move) *game.GameState {
	next := state.Clone()
	next.SimulateMove(m)
	return next
}
