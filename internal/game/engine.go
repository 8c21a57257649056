package game

import "errors"

var ErrInvalidSide = errors.New("not a playable side")

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// captureRun returns how many opposing cells a piece of side placed at (row,col)
// would capture along d. A run that reaches an empty cell or the edge before a
// cell of side captures nothing.
func captureRun(b *Board, row, col int, side Color, d [2]int) int {
	opp := side.Opponent()
	r, c := row+d[0], col+d[1]
	n := 0
	for inBounds(r, c) && b[r][c] == opp {
		r += d[0]
		c += d[1]
		n++
	}
	if n > 0 && inBounds(r, c) && b[r][c] == side {
		return n
	}
	return 0
}

// IsLegalMove reports whether side may place a piece at (row,col).
func IsLegalMove(b Board, row, col int, side Color) bool {
	if !side.IsSide() || !inBounds(row, col) || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if captureRun(&b, row, col, side, d) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists the legal moves of side in row-major order. Search tie-breaks
// depend on this order.
func LegalMoves(b Board, side Color) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegalMove(b, r, c, side) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func HasLegalMove(b Board, side Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegalMove(b, r, c, side) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places side at (row,col) and flips every capture run, returning the
// resulting board. The input board is not modified.
//
// The move must satisfy IsLegalMove; ApplyMove does not check it again and the
// result of an unchecked move is unspecified.
func ApplyMove(b Board, row, col int, side Color) Board {
	next := b
	next[row][col] = side
	for _, d := range directions {
		n := captureRun(&b, row, col, side, d)
		r, c := row, col
		for i := 0; i < n; i++ {
			r += d[0]
			c += d[1]
			next[r][c] = side
		}
	}
	return next
}

// Flips lists the cells a legal move at (row,col) converts to side, grouped by
// direction in the fixed direction order.
func Flips(b Board, row, col int, side Color) []Move {
	var out []Move
	for _, d := range directions {
		n := captureRun(&b, row, col, side, d)
		r, c := row, col
		for i := 0; i < n; i++ {
			r += d[0]
			c += d[1]
			out = append(out, Move{Row: r, Col: c})
		}
	}
	return out
}
