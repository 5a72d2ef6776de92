package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type MatchResult struct {
	Score   float64 // Black's points divided by the number of games, in [0, 1]
	Games   []Result
	Forfeit game.Color // Side that ran out of time, Empty otherwise

	GameMetrics []metrics.GameMetric
	MoveMetrics [][]metrics.MoveMetric // Per game
}

// Match plays a fixed number of games with the same agent on each color. Thinking time
// is budgeted per match, not per game.
type Match struct {
	black   agent.Agent
	white   agent.Agent
	games   int
	budget  time.Duration
	options []Option
}

// NewMatch configures a match. A non-positive budget disables the clock. options are
// passed on to every game.
func NewMatch(black, white agent.Agent, games int, budget time.Duration, options ...Option) *Match {
	if games < 1 {
		panic("a match needs at least one game")
	}
	return &Match{
		black:   black,
		white:   white,
		games:   games,
		budget:  budget,
		options: options,
	}
}

// Play runs the games in order. Running out of time ends the match on the spot: the
// side still on the clock scores 1, the other 0. A fault only loses the game it
// happened in.
func (m *Match) Play() MatchResult {
	options := m.options
	var budgets *Budgets
	if m.budget > 0 {
		budgets = NewBudgets(m.budget)
		options = append(append([]Option{}, options...), WithBudgets(budgets))
	}

	var result MatchResult
	points := 0.0
	for i := 0; i < m.games; i++ {
		r, gameMetric, moveMetrics := NewLocal(m.black, m.white, options...).Run()
		result.Games = append(result.Games, r)
		result.GameMetrics = append(result.GameMetrics, gameMetric)
		result.MoveMetrics = append(result.MoveMetrics, moveMetrics)

		if r.Reason == ReasonTimeout {
			result.Forfeit = r.Offender
			result.Score = r.Score(game.Black)
			log.Debug().Msgf("match forfeited by %s in game %d of %d", r.Offender, i+1, m.games)
			return result
		}
		points += r.Score(game.Black)
	}

	result.Score = points / float64(m.games)
	return result
}
