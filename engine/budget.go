package engine

import (
	"reversi/game"
	"time"
)

// Budgets holds the thinking time each side has left. One Budgets is shared by all
// games of a match.
type Budgets struct {
	Black time.Duration
	White time.Duration
}

func NewBudgets(budget time.Duration) *Budgets {
	return &Budgets{Black: budget, White: budget}
}

// Spend subtracts elapsed from c's budget and returns what is left.
func (b *Budgets) Spend(c game.Color, elapsed time.Duration) time.Duration {
	if c == game.Black {
		b.Black -= elapsed
		return b.Black
	}
	b.White -= elapsed
	return b.White
}

func (b *Budgets) Remaining(c game.Color) time.Duration {
	if c == game.Black {
		return b.Black
	}
	return b.White
}
