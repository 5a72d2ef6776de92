package game

// Board is the 8x8 grid indexed [row][col]. Being an array, assignment copies it.
type Board [BoardSize][BoardSize]Color

// NewBoard returns the standard four disc start position.
func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = Black, Black
	b[3][4], b[4][3] = White, White
	return b
}

func (b *Board) Clone() Board {
	return *b
}

func (b *Board) Count(c Color) int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

func (b *Board) Occupied() int {
	return BoardSize*BoardSize - b.Count(Empty)
}

func (b *Board) centreOpen() bool {
	for row := 3; row <= 4; row++ {
		for col := 3; col <= 4; col++ {
			if b[row][col] == Empty {
				return true
			}
		}
	}
	return false
}

// captures reports whether walking from (row, col) in direction (dr, dc) crosses at
// least one opposing disc and then reaches a disc of color c.
func (b *Board) captures(row, col, dr, dc int, c Color) bool {
	between := 0
	for onBoard(row, col) {
		switch b[row][col] {
		case c:
			return between > 0
		case Empty:
			return false
		}
		between++
		row += dr
		col += dc
	}
	return false
}

func (b *Board) IsValidMove(m Move, c Color) bool {
	if !onBoard(m.Row, m.Col) || b[m.Row][m.Col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.captures(m.Row+d[0], m.Col+d[1], d[0], d[1], c) {
			return true
		}
	}
	return false
}

// ValidMoves lists the legal moves for c in row-major order. While a centre cell is
// still empty only the empty centre cells are playable.
func (b *Board) ValidMoves(c Color) []Move {
	var moves []Move
	if b.centreOpen() {
		for row := 3; row <= 4; row++ {
			for col := 3; col <= 4; col++ {
				if b[row][col] == Empty {
					moves = append(moves, Move{Row: row, Col: col})
				}
			}
		}
		return moves
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			m := Move{Row: row, Col: col}
			if b.IsValidMove(m, c) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Place puts a disc of color c on m and flips every captured ray. It returns the
// number of flipped discs.
func (b *Board) Place(m Move, c Color) int {
	b[m.Row][m.Col] = c
	flipped := 0
	for _, d := range directions {
		row, col := m.Row+d[0], m.Col+d[1]
		if !b.captures(row, col, d[0], d[1], c) {
			continue
		}
		for b[row][col] != c {
			b[row][col] = c
			flipped++
			row += d[0]
			col += d[1]
		}
	}
	return flipped
}

// hasEmptyNeighbour reports whether any of the 8 cells around (row, col) is empty.
func (b *Board) hasEmptyNeighbour(row, col int) bool {
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if onBoard(r, c) && b[r][c] == Empty {
			return true
		}
	}
	return false
}
