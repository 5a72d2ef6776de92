package searcher

import (
	"math"
	"reversi/game"
)

// Role tells a node whether it picks the highest or the lowest child value.
type Role int

const (
	Maximizing Role = iota
	Minimizing
)

func (r Role) Flip() Role {
	if r == Maximizing {
		return Minimizing
	}
	return Maximizing
}

func (r Role) String() string {
	if r == Maximizing {
		return "max"
	}
	return "min"
}

// worst is the starting value of a node before any child is seen.
func (r Role) worst() float64 {
	if r == Maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// Searcher picks a move for the side to move.
type Searcher interface {
	FindMove(state *game.GameState) (move game.Move, value float64, ok bool)
}
