package searcher

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type Option func(s *AlphaBeta)

type Result struct {
	Move       game.Move
	Value      float64
	OK         bool // False when the side to move has no legal move
	Stochastic bool // Move was drawn at random instead of by value
}

// AlphaBeta is a depth bounded minimax searcher with alpha-beta pruning.
type AlphaBeta struct {
	depth   int
	pruning bool
	rng     *rand.Rand
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithRand sets the source used to pick a move in stochastic mode.
func WithRand(rng *rand.Rand) Option {
	return func(s *AlphaBeta) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = metrics.NewCollector()
	}
}

// WithoutPruning explores every branch. Results are unchanged, only slower.
func WithoutPruning() Option {
	return func(s *AlphaBeta) {
		s.pruning = false
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		depth:   1,
		pruning: true,
		rng:     rand.New(rand.NewSource(1)),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *AlphaBeta) Depth() int {
	return s.depth
}

func (s *AlphaBeta) FindMove(state *game.GameState) (game.Move, float64, bool) {
	result, _ := s.Search(state)
	return result.Move, result.Value, result.OK
}

// Search expands every root child to the full depth and returns the child with the
// strictly greatest value, so the first explored move wins ties. When the random
// weight of state is the stochastic sentinel the move is drawn uniformly instead.
// Every ply simulates a move of the side to move and leaves are scored for that side.
func (s *AlphaBeta) Search(state *game.GameState) (Result, metrics.SearchMetric) {
	s.metrics.Start(s.depth, s.pruning)

	moves := state.ValidMoves()
	if len(moves) == 0 {
		return Result{}, s.metrics.Complete()
	}

	t := &tree{
		pruning: s.pruning,
		metrics: s.metrics,
	}
	root := node{
		state: state,
		depth: s.depth,
		role:  Maximizing,
		alpha: math.Inf(-1),
		beta:  math.Inf(1),
	}
	t.metrics.AddNode()

	children := make([]node, len(moves))
	for i, move := range moves {
		children[i] = node{
			state: simulate(state, move),
			move:  move,
			depth: root.depth - 1,
			role:  root.role.Flip(),
		}
	}

	if state.Weights[game.Random] == game.StochasticSentinel {
		pick := children[s.rng.Intn(len(children))]
		return Result{Move: pick.move, OK: true, Stochastic: true}, s.metrics.Complete()
	}

	best := Result{Value: math.Inf(-1), OK: true}
	for i := range children {
		child := &children[i]
		child.alpha, child.beta = root.alpha, root.beta
		value := t.expand(child)
		if value > best.Value {
			best.Value = value
			best.Move = child.move
		}
		root.alpha = max(root.alpha, value)
	}
	root.value = best.Value

	return best, s.metrics.Complete()
}
