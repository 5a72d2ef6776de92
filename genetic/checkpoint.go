package genetic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reversi/game"

	"github.com/pkg/errors"
)

type HistoryEntry struct {
	Generation int          `json:"generation"`
	Weights    game.Weights `json:"weights"`
	Fitness    float64      `json:"fitness"`
	MaxDepth   int          `json:"max_depth"`
}

// Checkpoint is the training progress file. History only ever grows.
type Checkpoint struct {
	Generation   int            `json:"generation"`
	BestWeights  game.Weights   `json:"best_weights"`
	BestFitness  float64        `json:"best_fitness"`
	BestMaxDepth int            `json:"best_max_depth"`
	History      []HistoryEntry `json:"weights_history"`
}

func (c *Checkpoint) Best() Individual {
	return Individual{
		Weights:  c.BestWeights,
		MaxDepth: c.BestMaxDepth,
		Fitness:  c.BestFitness,
	}
}

// LoadCheckpoint returns nil without an error when path does not exist.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read checkpoint %s", path)
	}

	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse checkpoint %s", path)
	}
	return &c, nil
}

// SaveCheckpoint records best as the result of generation. The entry is appended to
// the history already stored at path.
func SaveCheckpoint(path string, generation int, best Individual) error {
	previous, err := LoadCheckpoint(path)
	if err != nil {
		return err
	}

	c := Checkpoint{
		Generation:   generation,
		BestWeights:  best.Weights,
		BestFitness:  best.Fitness,
		BestMaxDepth: best.MaxDepth,
		History:      []HistoryEntry{},
	}
	if previous != nil {
		c.History = append(c.History, previous.History...)
	}
	c.History = append(c.History, HistoryEntry{
		Generation: generation,
		Weights:    best.Weights,
		Fitness:    best.Fitness,
		MaxDepth:   best.MaxDepth,
	})

	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode checkpoint")
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file next to path and renames it over
// path, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary checkpoint for %s", path)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // No-op once renamed

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write checkpoint %s", path)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to sync checkpoint %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close checkpoint %s", path)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return errors.Wrapf(err, "failed to set checkpoint permissions %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "failed to replace checkpoint %s", path)
	}
	return nil
}
