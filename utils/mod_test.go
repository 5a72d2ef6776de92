package utils

import (
	"reversi/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	moves := []game.Move{{Row: 2, Col: 4}, {Row: 3, Col: 5}}

	require.Equal(t, 1, FindIndex(moves, game.Move{Row: 3, Col: 5}))
	require.Equal(t, -1, FindIndex(moves, game.Move{Row: 0, Col: 0}))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0.0, Clamp(-0.3, 0, 1))
	require.Equal(t, 1.0, Clamp(1.2, 0, 1))
	require.Equal(t, 0.5, Clamp(0.5, 0, 1))
	require.Equal(t, 8, Clamp(9, 1, 8))
	require.Equal(t, 1, Clamp(0, 1, 8))
}
