package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"reversi/config"
	"reversi/experiments"
	"reversi/game"
	"reversi/genetic"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	mode := flag.String("mode", "train", "One of train, pruning, baseline")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the configuration")
	generations := flag.Int("generations", 0, "Number of generations, overrides the configuration")
	logLevel := flag.String("log-level", "", "Log level, overrides the configuration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *generations > 0 {
		cfg.Generations = *generations
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *mode, cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func run(ctx context.Context, mode string, cfg config.Config) error {
	switch mode {
	case "train":
		trainer, err := genetic.NewTrainer(cfg)
		if err != nil {
			return err
		}
		return trainer.Evolve(ctx)
	case "pruning":
		weights := game.Weights{0.8, 0.5, 1, 0.3, 0.6, 0, 0.4}
		_, err := experiments.RunPruningExperiment(cfg.RecordsDir, weights, []int{1, 2, 3, 4, 5}, 50, cfg.Seed)
		return err
	case "baseline":
		checkpoint, err := genetic.LoadCheckpoint(cfg.CheckpointPath)
		if err != nil {
			return err
		}
		if checkpoint == nil {
			return errors.Errorf("no trained weights at %s", cfg.CheckpointPath)
		}
		_, err = experiments.RunBaselineExperiment(cfg.RecordsDir, checkpoint.Best(), cfg.GamesPerMatch, cfg.TimeBudget, cfg.Seed)
		return err
	default:
		return errors.Errorf("unknown mode %q", mode)
	}
}
