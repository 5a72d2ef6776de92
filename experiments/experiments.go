package experiments

import (
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/genetic"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MatchUp is the outcome of one match from black's point of view.
type MatchUp struct {
	Black int // metrics.AgentConfig.ID
	White int
	Score float64
}

const (
	trainedID = iota
	randomID
	greedyID
)

// RunBaselineExperiment plays the trained individual against a random and a greedy
// bot, on both colors, and stores every game and move below dir. An empty dir skips
// the records.
func RunBaselineExperiment(dir string, trained genetic.Individual, games int, budget time.Duration, seed uint64) ([]MatchUp, error) {
	configs := []metrics.AgentConfig{
		{ID: trainedID, Name: "trained", Weights: trained.Weights, MaxDepth: trained.MaxDepth},
		{ID: randomID, Name: "random"},
		{ID: greedyID, Name: "greedy", MaxDepth: 1},
	}
	configs[greedyID].Weights[game.CoinParity] = 1

	matchUps := [][2]int{
		{trainedID, randomID},
		{randomID, trainedID},
		{trainedID, greedyID},
		{greedyID, trainedID},
	}

	rng := rand.New(rand.NewSource(seed))
	newAgent := func(id int) agent.Agent {
		source := rand.New(rand.NewSource(rng.Uint64()))
		switch id {
		case trainedID:
			return trained.Bot(source, searcher.WithMetrics())
		case randomID:
			return agent.NewRandomAgent(source)
		default:
			return agent.NewGreedyAgent()
		}
	}

	log.Info().Msg("starting baseline experiment...")

	count := 0
	results := []MatchUp{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range matchUps {
		black, white := configs[matchUp[0]], configs[matchUp[1]]
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), black.Name, white.Name)

		result := engine.NewMatch(newAgent(black.ID), newAgent(white.ID), games, budget).Play()
		results = append(results, MatchUp{Black: black.ID, White: white.ID, Score: result.Score})

		for gi, gameMetric := range result.GameMetrics {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range result.MoveMetrics[gi] {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d with score %.2f for %s", mi+1, len(matchUps), result.Score, black.Name)
	}

	log.Info().Msg("completed baseline experiment")

	if dir == "" {
		return results, nil
	}
	writer, err := metrics.NewWriter(dir, "baseline")
	if err != nil {
		return results, errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return results, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return results, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return results, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return results, nil
}
