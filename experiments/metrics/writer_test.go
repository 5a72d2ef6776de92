package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reversi/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "training")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())

	t.Run("generation records", func(t *testing.T) {
		records := []GenerationRecord{
			{Generation: 0, BestFitness: 0.75, MeanFitness: 0.5, BestDepth: 3, BestWeights: game.Weights{1, 0, 0, 0, 0, 0, 0.5}, Duration: time.Second},
			{Generation: 1, BestFitness: 0.8, MeanFitness: 0.5, BestDepth: 4},
		}

		require.NoError(t, writer.WriteGenerationRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "generations.csv"))
		require.Len(t, rows, 3, "Header plus one row per generation")
		require.Equal(t, "best_weights", rows[0][4])
		require.Equal(t, []string{"0", "0.7500", "0.5000", "3", "1.0000 0.0000 0.0000 0.0000 0.0000 0.0000 0.5000", "1s"}, rows[1])
	})

	t.Run("rewriting replaces the file", func(t *testing.T) {
		require.NoError(t, writer.WriteGenerationRecords([]GenerationRecord{{Generation: 5}}))

		rows := readCSV(t, filepath.Join(writer.Dir(), "generations.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "5", rows[1][0])
	})

	t.Run("game and move records", func(t *testing.T) {
		games := []GameRecord{{ID: 1, Agent1: 2, Agent2: 3, GameMetric: GameMetric{StartingPlayer: game.Black, Winner: game.White, Reason: "completed", BlackDiscs: 20, WhiteDiscs: 44, TotalMoves: 60}}}
		moves := []MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black, SearchMetric: SearchMetric{Depth: 2, Nodes: 20, Leaves: 16, Cutoffs: 1}}}}

		require.NoError(t, writer.WriteGameRecords(games))
		require.NoError(t, writer.WriteMoveRecords(moves))

		gameRows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Equal(t, "white", gameRows[1][4])
		require.Equal(t, "completed", gameRows[1][5])
		moveRows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "black", "2", "0s", "20", "16", "1"}, moveRows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counts since start", func(t *testing.T) {
		c := NewCollector()
		c.AddNode()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, 3, got.Depth)
		require.True(t, got.Pruning)
		require.Equal(t, 2, got.Nodes, "Start should reset the counters")
		require.Equal(t, 1, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
