package game

import "fmt"

const BoardSize = 8

// Color is the content of a board cell and doubles as the player identity.
// Values follow the board encoding used by the game server (0 empty, 1 black, 2 white).
type Color int

const (
	Empty Color = iota
	Black
	White
)

func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Noise supplies the uniform draws of the random evaluation term.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Noise interface {
	Float64() float64
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
