package config

import (
	"os"
	"reversi/meta"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every training and experiment setting. Keys missing from a file keep
// their defaults.
type Config struct {
	PopulationSize    int           `yaml:"population_size"`
	GamesPerMatch     int           `yaml:"games_per_match"`
	MutationRate      float64       `yaml:"mutation_rate"`
	MutationRange     float64       `yaml:"mutation_range"`
	Generations       int           `yaml:"generations"`
	TimeBudget        time.Duration `yaml:"time_budget"` // Per bot and match, 0 disables the clock
	MinDepth          int           `yaml:"min_depth"`
	MaxDepth          int           `yaml:"max_depth"`
	StabilityDepthCap int           `yaml:"stability_depth_cap"`
	EliteCount        int           `yaml:"elite_count"`
	TournamentSize    int           `yaml:"tournament_size"`
	CheckpointPath    string        `yaml:"checkpoint_path"` // Empty disables checkpoints
	CheckpointEvery   int           `yaml:"checkpoint_every"`
	Seed              uint64        `yaml:"seed"`
	Workers           int           `yaml:"workers"`
	RecordsDir        string        `yaml:"records_dir"` // Empty disables CSV records
	LogLevel          string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		PopulationSize:    meta.POPULATION_SIZE,
		GamesPerMatch:     meta.GAMES_PER_MATCH,
		MutationRate:      meta.MUTATION_RATE,
		MutationRange:     meta.MUTATION_RANGE,
		Generations:       meta.GENERATIONS,
		TimeBudget:        meta.TIME_BUDGET,
		MinDepth:          meta.MIN_DEPTH,
		MaxDepth:          meta.MAX_DEPTH,
		StabilityDepthCap: meta.STABILITY_DEPTH_CAP,
		EliteCount:        meta.ELITE_COUNT,
		TournamentSize:    meta.TOURNAMENT_SIZE,
		CheckpointPath:    meta.CHECKPOINT_PATH,
		CheckpointEvery:   meta.CHECKPOINT_EVERY,
		Seed:              meta.SEED,
		Workers:           meta.WORKERS,
		LogLevel:          meta.LOG_LEVEL,
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 2:
		return errors.Errorf("population_size must be at least 2, got %d", c.PopulationSize)
	case c.EliteCount < 0 || c.EliteCount > c.PopulationSize:
		return errors.Errorf("elite_count must be within [0, %d], got %d", c.PopulationSize, c.EliteCount)
	case c.TournamentSize < 1 || c.TournamentSize > c.PopulationSize:
		return errors.Errorf("tournament_size must be within [1, %d], got %d", c.PopulationSize, c.TournamentSize)
	case c.GamesPerMatch < 1:
		return errors.Errorf("games_per_match must be positive, got %d", c.GamesPerMatch)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return errors.Errorf("mutation_rate must be within [0, 1], got %g", c.MutationRate)
	case c.MutationRange < 0 || c.MutationRange > 1:
		return errors.Errorf("mutation_range must be within [0, 1], got %g", c.MutationRange)
	case c.Generations < 0:
		return errors.Errorf("generations must not be negative, got %d", c.Generations)
	case c.MinDepth < 1 || c.MinDepth > c.MaxDepth:
		return errors.Errorf("depth range [%d, %d] is invalid", c.MinDepth, c.MaxDepth)
	case c.StabilityDepthCap < c.MinDepth:
		return errors.Errorf("stability_depth_cap %d is below min_depth %d", c.StabilityDepthCap, c.MinDepth)
	case c.CheckpointEvery < 1:
		return errors.Errorf("checkpoint_every must be positive, got %d", c.CheckpointEvery)
	case c.Workers < 1:
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
