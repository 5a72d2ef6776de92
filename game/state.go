package game

// GameState is a board together with the side to move and the evaluation setup of
// the bot that owns it. Play and Pass return new states and leave the receiver untouched.
type GameState struct {
	Board   Board
	Turn    Color
	Weights Weights
	Noise   Noise // Source for the random term, shared by clones
}

// NewGameState returns the standard start position with black to move.
func NewGameState() *GameState {
	return &GameState{
		Board: NewBoard(),
		Turn:  Black,
	}
}

// NewGameStateFrom wraps an arbitrary board, e.g. one received from a server.
func NewGameStateFrom(b Board, turn Color) *GameState {
	return &GameState{Board: b, Turn: turn}
}

func (gs *GameState) Clone() *GameState {
	clone := *gs
	return &clone
}

func (gs *GameState) ValidMoves() []Move {
	return gs.Board.ValidMoves(gs.Turn)
}

func (gs *GameState) IsValidMove(m Move) bool {
	for _, valid := range gs.ValidMoves() {
		if valid == m {
			return true
		}
	}
	return false
}

// SimulateMove places a disc for the side to move on this state's board, flips the
// captured discs and returns the resulting score for the mover. The turn is unchanged.
func (gs *GameState) SimulateMove(m Move) float64 {
	gs.Board.Place(m, gs.Turn)
	return gs.Score(gs.Turn)
}

// Play returns the state after the side to move plays m, with the turn handed over.
func (gs *GameState) Play(m Move) *GameState {
	next := gs.Clone()
	next.Board.Place(m, gs.Turn)
	next.Turn = gs.Turn.Opponent()
	return next
}

// Pass returns the state with the turn handed over and the board unchanged.
func (gs *GameState) Pass() *GameState {
	next := gs.Clone()
	next.Turn = gs.Turn.Opponent()
	return next
}

// Score evaluates the board from turn's perspective using the state's weights.
func (gs *GameState) Score(turn Color) float64 {
	return Evaluate(&gs.Board, turn, gs.Weights, gs.Noise)
}

func (gs *GameState) Count(c Color) int {
	return gs.Board.Count(c)
}

// Winner compares piece counts; Empty means a draw.
func (gs *GameState) Winner() Color {
	black, white := gs.Count(Black), gs.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
