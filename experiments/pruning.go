package experiments

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RunPruningExperiment searches the same positions with and without alpha-beta
// pruning at every depth and records the work each search does. Positions come from
// seeded random playouts. Both searches must agree on the move and its value.
func RunPruningExperiment(dir string, weights game.Weights, depths []int, positions int, seed uint64) ([]metrics.PruningRecord, error) {
	states := samplePositions(rngFor(seed), positions)
	records := []metrics.PruningRecord{}

	log.Info().Msgf("starting pruning experiment on %d positions...", len(states))

	for _, depth := range depths {
		pruned := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())
		full := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics(), searcher.WithoutPruning())

		prunedNodes, fullNodes := 0, 0
		for i, state := range states {
			state.Weights = weights

			prunedResult, prunedMetric := pruned.Search(state)
			fullResult, fullMetric := full.Search(state)
			if prunedResult.Move != fullResult.Move || prunedResult.Value != fullResult.Value {
				return records, errors.Errorf("pruning changed the result at depth %d position %d: %s %g != %s %g",
					depth, i, prunedResult.Move, prunedResult.Value, fullResult.Move, fullResult.Value)
			}

			records = append(records,
				metrics.PruningRecord{Position: i, SearchMetric: prunedMetric},
				metrics.PruningRecord{Position: i, SearchMetric: fullMetric},
			)
			prunedNodes += prunedMetric.Nodes
			fullNodes += fullMetric.Nodes
		}
		log.Info().Msgf("depth %d: %d nodes with pruning, %d without", depth, prunedNodes, fullNodes)
	}

	log.Info().Msg("completed pruning experiment")

	if dir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(dir, "pruning")
	if err != nil {
		return records, errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WritePruningRecords(records); err != nil {
		return records, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return records, nil
}

// samplePositions plays random games and keeps every position where the side to move
// has a choice.
func samplePositions(rng *rand.Rand, count int) []*game.GameState {
	states := []*game.GameState{}
	for len(states) < count {
		state := game.NewGameState()
		for len(states) < count {
			moves := state.ValidMoves()
			if len(moves) == 0 {
				break
			}
			if len(moves) > 1 {
				states = append(states, state)
			}
			state = state.Play(moves[rng.Intn(len(moves))])
		}
	}
	return states
}

func rngFor(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
