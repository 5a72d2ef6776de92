package genetic

import (
	"context"
	"reversi/config"
	"reversi/experiments/metrics"
	"reversi/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type TrainerOption func(t *Trainer)

// WithTournament replaces the tournament built from the configuration.
func WithTournament(tournament *Tournament) TrainerOption {
	return func(t *Trainer) {
		if tournament != nil {
			t.tournament = tournament
		}
	}
}

// WithTrainerRand replaces the source seeded from the configuration.
func WithTrainerRand(rng *rand.Rand) TrainerOption {
	return func(t *Trainer) {
		if rng != nil {
			t.rng = rng
		}
	}
}

// Trainer evolves a population of bots generation by generation.
type Trainer struct {
	cfg        config.Config
	rng        *rand.Rand
	tournament *Tournament
	population Population
	generation int // Next generation to play
	history    []HistoryEntry
	writer     *metrics.Writer
	records    []metrics.GenerationRecord
}

// NewTrainer draws the initial population. When the checkpoint file exists training
// resumes at its generation, with its best individual in the first slot.
func NewTrainer(cfg config.Config, options ...TrainerOption) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Trainer{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		tournament: NewTournament(cfg.GamesPerMatch, cfg.TimeBudget,
			WithWorkers(cfg.Workers)),
	}
	for _, option := range options {
		option(t)
	}
	t.population = NewRandomPopulation(cfg, t.rng)

	if cfg.CheckpointPath != "" {
		checkpoint, err := LoadCheckpoint(cfg.CheckpointPath)
		if err != nil {
			return nil, err
		}
		if checkpoint != nil {
			t.generation = checkpoint.Generation
			t.history = checkpoint.History
			best := checkpoint.Best()
			best.MaxDepth = utils.Clamp(best.MaxDepth, cfg.MinDepth, cfg.MaxDepth)
			t.population[0] = best
			log.Info().Msgf("resuming from generation %d", t.generation)
		}
	}

	if cfg.RecordsDir != "" {
		writer, err := metrics.NewWriter(cfg.RecordsDir, "training")
		if err != nil {
			return nil, errors.Wrap(err, "failed to create training records")
		}
		t.writer = writer
	}
	return t, nil
}

func (t *Trainer) Generation() int {
	return t.generation
}

func (t *Trainer) Population() Population {
	return t.population.Clone()
}

// History holds the best individual of every finished generation, including those
// replayed from the checkpoint.
func (t *Trainer) History() []HistoryEntry {
	return append([]HistoryEntry{}, t.history...)
}

// Evolve runs generations until the configured number is reached or ctx is cancelled.
func (t *Trainer) Evolve(ctx context.Context) error {
	for t.generation < t.cfg.Generations {
		if _, err := t.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step plays one tournament, records its best individual and breeds the next
// generation. It returns the best individual of the finished generation.
func (t *Trainer) Step(ctx context.Context) (Individual, error) {
	started := time.Now()
	log.Info().Msgf("generation %d", t.generation+1)

	if err := t.tournament.Run(ctx, t.population, t.rng); err != nil {
		return Individual{}, err
	}
	t.population.SortByFitness()
	best := t.population[0]

	t.history = append(t.history, HistoryEntry{
		Generation: t.generation,
		Weights:    best.Weights,
		Fitness:    best.Fitness,
		MaxDepth:   best.MaxDepth,
	})
	log.Info().Msgf("best fitness %.3f depth %d weights %v", best.Fitness, best.MaxDepth, best.Weights)

	if t.cfg.CheckpointPath != "" && t.generation%t.cfg.CheckpointEvery == 0 {
		if err := SaveCheckpoint(t.cfg.CheckpointPath, t.generation, best); err != nil {
			return best, err
		}
	}
	if err := t.record(best, time.Since(started)); err != nil {
		return best, err
	}

	t.population = t.breed()
	t.generation++
	return best, nil
}

// breed keeps the elites as they are and fills the rest with mutated children of
// tournament-selected parents. The population must be sorted.
func (t *Trainer) breed() Population {
	next := make(Population, 0, len(t.population))
	next = append(next, t.population[:t.cfg.EliteCount]...)
	for len(next) < len(t.population) {
		a := Select(t.population, t.cfg.TournamentSize, t.rng)
		b := Select(t.population, t.cfg.TournamentSize, t.rng)
		next = append(next, Mutate(Crossover(a, b, t.rng), t.cfg, t.rng))
	}
	return next
}

func (t *Trainer) record(best Individual, duration time.Duration) error {
	if t.writer == nil {
		return nil
	}
	t.records = append(t.records, metrics.GenerationRecord{
		Generation:  t.generation,
		BestFitness: best.Fitness,
		MeanFitness: t.population.MeanFitness(),
		BestDepth:   best.MaxDepth,
		BestWeights: best.Weights,
		Duration:    duration,
	})
	return t.writer.WriteGenerationRecords(t.records)
}
