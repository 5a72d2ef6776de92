package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Engine plays one game to the end.
type Engine interface {
	Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Reason int

const (
	ReasonCompleted Reason = iota // Both sides passed in a row
	ReasonTimeout                 // Offender ran out of thinking time
	ReasonFault                   // Offender failed while choosing or playing a move
)

func (r Reason) String() string {
	switch r {
	case ReasonCompleted:
		return "completed"
	case ReasonTimeout:
		return "timeout"
	case ReasonFault:
		return "fault"
	default:
		return "unknown"
	}
}

type Result struct {
	Winner   game.Color // Empty for a draw
	Reason   Reason
	Offender game.Color // Side that timed out or faulted
	Err      error      // Set for ReasonFault
	Black    int        // Discs at the end
	White    int
	Moves    int // Discs placed during the game
	Passes   int
	Final    *game.GameState
}

// Score is 1 for a win, 0.5 for a draw and 0 for a loss of color c.
func (r Result) Score(c game.Color) float64 {
	switch r.Winner {
	case c:
		return 1
	case game.Empty:
		return 0.5
	default:
		return 0
	}
}
