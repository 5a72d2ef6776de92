package searcher

import (
	"math"
	"reversi/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var mixedWeights = game.Weights{0.8, 0.5, 1, 0.3, 0.6, 0, 0.4}

// minimax is a plain unpruned search used as the reference result. Every ply plays
// a move of the side to move without handing over the turn.
func minimax(state *game.GameState, depth int, role Role) float64 {
	moves := state.ValidMoves()
	if depth == 0 || len(moves) == 0 {
		return state.Score(state.Turn)
	}
	value := role.worst()
	for _, move := range moves {
		next := state.Clone()
		next.SimulateMove(move)
		childValue := minimax(next, depth-1, role.Flip())
		if role == Maximizing {
			value = max(value, childValue)
		} else {
			value = min(value, childValue)
		}
	}
	return value
}

func referenceMove(state *game.GameState, depth int) (game.Move, float64) {
	var best game.Move
	bestValue := math.Inf(-1)
	for _, move := range state.ValidMoves() {
		next := state.Clone()
		next.SimulateMove(move)
		value := minimax(next, depth-1, Minimizing)
		if value > bestValue {
			best, bestValue = move, value
		}
	}
	return best, bestValue
}

// positions plays random games from the start and collects states along the way.
func positions(seed uint64, count int, weights game.Weights) []*game.GameState {
	rng := rand.New(rand.NewSource(seed))
	var out []*game.GameState
	for len(out) < count {
		state := game.NewGameState()
		state.Weights = weights
		for ply := 0; len(out) < count; ply++ {
			moves := state.ValidMoves()
			if len(moves) == 0 {
				break
			}
			if ply%7 == 3 {
				out = append(out, state)
			}
			state = state.Play(moves[rng.Intn(len(moves))])
		}
	}
	return out
}

func TestRole(t *testing.T) {
	require.Equal(t, Minimizing, Maximizing.Flip())
	require.Equal(t, Maximizing, Minimizing.Flip())
	require.Equal(t, math.Inf(-1), Maximizing.worst())
	require.Equal(t, math.Inf(1), Minimizing.worst())
}

func TestSearchDepthOne(t *testing.T) {
	for i, state := range positions(11, 12, mixedWeights) {
		var want game.Move
		wantValue := math.Inf(-1)
		for _, move := range state.ValidMoves() {
			value := state.Clone().SimulateMove(move)
			if value > wantValue {
				want, wantValue = move, value
			}
		}

		got, value, ok := NewAlphaBeta(WithDepth(1)).FindMove(state)

		require.True(t, ok)
		require.Equal(t, want, got, "position %d: depth 1 should pick the best static evaluation", i)
		require.Equal(t, wantValue, value, "position %d", i)
	}
}

func TestSearchTieBreak(t *testing.T) {
	t.Run("first explored move wins on equal values", func(t *testing.T) {
		state := game.NewGameState()
		state.Weights = game.Weights{game.CoinParity: 1}

		// Every opening move is symmetric, so all values tie.
		got, _, ok := NewAlphaBeta(WithDepth(1)).FindMove(state)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 2, Col: 4}, got)
	})

	t.Run("all zero weights pick the first legal move", func(t *testing.T) {
		for _, state := range positions(5, 5, game.Weights{}) {
			got, value, ok := NewAlphaBeta(WithDepth(2)).FindMove(state)

			require.True(t, ok)
			require.Equal(t, state.ValidMoves()[0], got)
			require.Equal(t, 0.0, value)
		}
	})
}

func TestPruningMatchesMinimax(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		for i, state := range positions(uint64(depth), 8, mixedWeights) {
			wantMove, wantValue := referenceMove(state, depth)

			pruned := NewAlphaBeta(WithDepth(depth), WithMetrics())
			gotPruned, prunedMetric := pruned.Search(state)
			full := NewAlphaBeta(WithDepth(depth), WithMetrics(), WithoutPruning())
			gotFull, fullMetric := full.Search(state)

			require.Equal(t, wantMove, gotPruned.Move, "depth %d position %d", depth, i)
			require.Equal(t, wantValue, gotPruned.Value, "depth %d position %d", depth, i)
			require.Equal(t, gotPruned.Move, gotFull.Move)
			require.Equal(t, gotPruned.Value, gotFull.Value)
			require.LessOrEqual(t, prunedMetric.Nodes, fullMetric.Nodes,
				"Pruning must never visit more nodes")
			require.Zero(t, fullMetric.Cutoffs)
		}
	}
}

func TestSearchKeepsTheTurn(t *testing.T) {
	t.Run("simulated plies stay with the side to move", func(t *testing.T) {
		state := game.NewGameState().Play(game.Move{Row: 2, Col: 4})

		next := simulate(state, state.ValidMoves()[0])

		require.Equal(t, game.White, next.Turn)
		require.Equal(t, game.White, state.Turn)
		require.NotEqual(t, state.Board, next.Board)
	})

	t.Run("deeper searches follow the own-move tree", func(t *testing.T) {
		for depth := 2; depth <= 3; depth++ {
			for i, state := range positions(99, 40, mixedWeights) {
				wantMove, wantValue := referenceMove(state, depth)

				got, value, ok := NewAlphaBeta(WithDepth(depth)).FindMove(state)

				require.True(t, ok)
				require.Equal(t, wantMove, got, "depth %d position %d", depth, i)
				require.Equal(t, wantValue, value, "depth %d position %d", depth, i)
			}
		}
	})
}

func TestPruningCutsNodes(t *testing.T) {
	prunedNodes, fullNodes := 0, 0
	for _, state := range positions(21, 6, mixedWeights) {
		_, pruned := NewAlphaBeta(WithDepth(4), WithMetrics()).Search(state)
		_, full := NewAlphaBeta(WithDepth(4), WithMetrics(), WithoutPruning()).Search(state)
		prunedNodes += pruned.Nodes
		fullNodes += full.Nodes
	}

	require.Less(t, prunedNodes, fullNodes, "Alpha-beta should skip some branches at depth 4")
}

func TestCoinParityDepthFour(t *testing.T) {
	state := game.NewGameState()
	state.Weights = game.Weights{1, 0, 0, 0, 0, 0, 0}

	s := NewAlphaBeta(WithDepth(4))
	result, _ := s.Search(state)

	_, wantValue := referenceMove(state, 4)
	require.True(t, result.OK)
	require.Equal(t, game.Move{Row: 2, Col: 4}, result.Move,
		"All four openings gain the same discs, the first one in scan order is kept")
	require.Equal(t, wantValue, result.Value)

	next := state.Play(result.Move)
	var want game.Board
	want[2][4], want[3][3], want[3][4], want[4][4] = game.Black, game.Black, game.Black, game.Black
	want[4][3] = game.White
	require.Equal(t, want, next.Board)
	require.Equal(t, game.White, next.Turn)
}

func TestSearchEdgeCases(t *testing.T) {
	t.Run("no legal move", func(t *testing.T) {
		var b game.Board
		b[3][3], b[3][4], b[4][3], b[4][4] = game.Black, game.Black, game.Black, game.Black
		state := game.NewGameStateFrom(b, game.White)

		_, _, ok := NewAlphaBeta(WithDepth(3)).FindMove(state)

		require.False(t, ok)
	})

	t.Run("search leaves the input untouched", func(t *testing.T) {
		state := positions(3, 1, mixedWeights)[0]
		before := *state

		NewAlphaBeta(WithDepth(3)).FindMove(state)

		require.Equal(t, before, *state)
	})

	t.Run("invalid depth keeps the default", func(t *testing.T) {
		require.Equal(t, 1, NewAlphaBeta(WithDepth(0)).Depth())
		require.Equal(t, 5, NewAlphaBeta(WithDepth(5)).Depth())
	})

	t.Run("metrics record the configured depth", func(t *testing.T) {
		_, metric := NewAlphaBeta(WithDepth(2), WithMetrics()).Search(game.NewGameState())

		require.Equal(t, 2, metric.Depth)
		require.True(t, metric.Pruning)
		require.Greater(t, metric.Leaves, 0)
		require.Greater(t, metric.Nodes, metric.Leaves)
	})
}

func TestStochasticMode(t *testing.T) {
	state := game.NewGameState()
	state.Weights = game.Weights{game.Random: game.StochasticSentinel}
	legal := state.ValidMoves()

	seen := map[game.Move]bool{}
	s := NewAlphaBeta(WithDepth(3), WithRand(rand.New(rand.NewSource(42))))
	for i := 0; i < 50; i++ {
		result, _ := s.Search(state)
		require.True(t, result.OK)
		require.True(t, result.Stochastic)
		require.Contains(t, legal, result.Move)
		seen[result.Move] = true
	}
	require.Greater(t, len(seen), 1, "Moves should be drawn at random")

	first, _ := NewAlphaBeta(WithRand(rand.New(rand.NewSource(9)))).Search(state)
	second, _ := NewAlphaBeta(WithRand(rand.New(rand.NewSource(9)))).Search(state)
	require.Equal(t, first.Move, second.Move, "Same seed, same draw")
}
