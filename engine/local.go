package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher/agent"
	"reversi/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithState starts the game from state instead of the standard opening.
func WithState(state *game.GameState) Option {
	return func(e *Local) {
		if state != nil {
			e.start = state
		}
	}
}

// WithBudgets enforces thinking time. Without it the agents have unlimited time.
func WithBudgets(budgets *Budgets) Option {
	return func(e *Local) {
		e.budgets = budgets
	}
}

// WithClock replaces time.Now for measuring how long agents think.
func WithClock(now func() time.Time) Option {
	return func(e *Local) {
		if now != nil {
			e.now = now
		}
	}
}

// Local runs a game between two in-process agents.
type Local struct {
	agents  [3]agent.Agent // Indexed by game.Color
	start   *game.GameState
	budgets *Budgets
	now     func() time.Time
}

func NewLocal(black, white agent.Agent, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need an agent for both colors")
	}
	e := &Local{
		start: game.NewGameState(),
		now:   time.Now,
	}
	e.agents[game.Black] = black
	e.agents[game.White] = white
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until both sides pass in a row. A side that runs out of time or fails to
// produce a legal move loses immediately.
func (e *Local) Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) {
	state := e.start
	moves, passes := 0, 0
	gameMetric = metrics.GameMetric{
		StartingPlayer: state.Turn,
		StartTime:      time.Now(),
	}

	finish := func(r Result) Result {
		r.Black, r.White = state.Count(game.Black), state.Count(game.White)
		r.Moves, r.Passes = moves, passes
		r.Final = state

		gameMetric.Winner = r.Winner
		gameMetric.Reason = r.Reason.String()
		gameMetric.BlackDiscs, gameMetric.WhiteDiscs = r.Black, r.White
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = moves
		return r
	}

	// Anything that goes wrong inside the game costs the side to move the game.
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("%s panicked: %v", state.Turn, r)
			log.Warn().Err(err).Msg("game aborted")
			result = finish(forfeit(state.Turn, ReasonFault, err))
		}
	}()

	consecutivePasses := 0
	for consecutivePasses < 2 {
		legal := state.ValidMoves()
		if len(legal) == 0 {
			consecutivePasses++
			passes++
			state = state.Pass()
			continue
		}
		consecutivePasses = 0

		turn := state.Turn
		started := e.now()
		move, ok, searchMetric := e.agents[turn].FindMove(state)
		elapsed := e.now().Sub(started)

		if e.budgets != nil {
			if remaining := e.budgets.Spend(turn, elapsed); remaining <= 0 {
				log.Debug().Msgf("%s ran out of time after %d moves", turn, moves)
				return finish(forfeit(turn, ReasonTimeout, nil)), gameMetric, moveMetrics
			}
		}

		if !ok {
			err := errors.Errorf("%s passed with %d legal moves", turn, len(legal))
			log.Warn().Err(err).Msg("game aborted")
			return finish(forfeit(turn, ReasonFault, err)), gameMetric, moveMetrics
		}
		if utils.FindIndex(legal, move) < 0 {
			err := errors.Errorf("%s played illegal move %s", turn, move)
			log.Warn().Err(err).Msg("game aborted")
			return finish(forfeit(turn, ReasonFault, err)), gameMetric, moveMetrics
		}

		state = state.Play(move)
		moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         moves,
			Player:       turn,
			SearchMetric: searchMetric,
		})
	}

	result = finish(Result{Winner: state.Winner(), Reason: ReasonCompleted})
	log.Debug().Msgf("game over after %d moves: black %d white %d", moves, result.Black, result.White)
	return result, gameMetric, moveMetrics
}

func forfeit(offender game.Color, reason Reason, err error) Result {
	return Result{
		Winner:   offender.Opponent(),
		Reason:   reason,
		Offender: offender,
		Err:      err,
	}
}
