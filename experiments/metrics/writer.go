package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reversi/game"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type AgentConfig struct {
	ID       int
	Name     string
	Weights  game.Weights
	MaxDepth int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing black
	Agent2 int // AgentConfig.ID playing white
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type GenerationRecord struct {
	Generation  int
	BestFitness float64
	MeanFitness float64
	BestDepth   int
	BestWeights game.Weights
	Duration    time.Duration
}

type PruningRecord struct {
	Position int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<UTC timestamp> and writes every file below it.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "name", "max_depth", "weights"}
	rows := lo.Map(configs, func(config AgentConfig, _ int) []string {
		return []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.MaxDepth),
			formatWeights(config.Weights),
		}
	})
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "reason", "black_discs", "white_discs", "start_time", "end_time", "duration", "total_moves"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.Reason,
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	})
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := lo.Map(records, func(record MoveRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		}
	})
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteGenerationRecords(records []GenerationRecord) error {
	header := []string{"generation", "best_fitness", "mean_fitness", "best_depth", "best_weights", "duration"}
	rows := lo.Map(records, func(record GenerationRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Generation),
			formatFloat(record.BestFitness),
			formatFloat(record.MeanFitness),
			strconv.Itoa(record.BestDepth),
			formatWeights(record.BestWeights),
			record.Duration.String(),
		}
	})
	return w.write("generations.csv", header, rows)
}

func (w *Writer) WritePruningRecords(records []PruningRecord) error {
	header := []string{"position", "depth", "pruning", "duration", "nodes", "leaves", "cutoffs"}
	rows := lo.Map(records, func(record PruningRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Position),
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Pruning),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		}
	})
	return w.write("pruning_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// formatWeights joins the weights with spaces so they stay in one CSV column.
func formatWeights(w game.Weights) string {
	parts := lo.Map(w[:], func(v float64, _ int) string {
		return formatFloat(v)
	})
	return strings.Join(parts, " ")
}
