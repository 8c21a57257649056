package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// boardOf builds a board from 8 rows using X for Black, O for White and . for empty.
func boardOf(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Size)
	var b Board
	for r, line := range rows {
		require.Len(t, line, Size, "row %d", r)
		for c, ch := range line {
			switch ch {
			case 'X':
				b[r][c] = Black
			case 'O':
				b[r][c] = White
			case '.':
			default:
				t.Fatalf("unexpected cell %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, White, b[3][3])
	require.Equal(t, Black, b[3][4])
	require.Equal(t, Black, b[4][3])
	require.Equal(t, White, b[4][4])
	require.Equal(t, 2, b.Count(Black))
	require.Equal(t, 2, b.Count(White))
	require.Equal(t, 60, b.Count(Empty))
	require.True(t, b.Valid())
}

func TestIsLegalMove(t *testing.T) {
	b := NewBoard()

	t.Run("opening moves for black", func(t *testing.T) {
		require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, LegalMoves(b, Black))
	})

	t.Run("opening moves for white", func(t *testing.T) {
		require.Equal(t, []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, LegalMoves(b, White))
	})

	t.Run("occupied cells are never legal", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		for game := 0; game < 20; game++ {
			b := NewBoard()
			side := Black
			for {
				for r := 0; r < Size; r++ {
					for c := 0; c < Size; c++ {
						if b[r][c] != Empty {
							require.False(t, IsLegalMove(b, r, c, Black))
							require.False(t, IsLegalMove(b, r, c, White))
						}
					}
				}
				moves := LegalMoves(b, side)
				if len(moves) == 0 {
					side = side.Opponent()
					moves = LegalMoves(b, side)
					if len(moves) == 0 {
						break
					}
				}
				m := moves[rng.IntN(len(moves))]
				b = ApplyMove(b, m.Row, m.Col, side)
				side = side.Opponent()
			}
		}
	})

	t.Run("empty is not a side", func(t *testing.T) {
		require.False(t, IsLegalMove(b, 2, 3, Empty))
		require.Empty(t, LegalMoves(b, Empty))
	})

	t.Run("out of bounds", func(t *testing.T) {
		require.False(t, IsLegalMove(b, -1, 0, Black))
		require.False(t, IsLegalMove(b, 0, Size, Black))
	})

	t.Run("run reaching the edge captures nothing", func(t *testing.T) {
		b := boardOf(t,
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"OOO.....",
		)
		require.False(t, IsLegalMove(b, 7, 3, Black))
	})

	t.Run("run reaching an empty cell captures nothing", func(t *testing.T) {
		b := boardOf(t,
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".OO.X...",
		)
		require.False(t, IsLegalMove(b, 7, 0, Black))
		require.False(t, IsLegalMove(b, 7, 3, Black))

		b[7][3] = Black
		require.True(t, IsLegalMove(b, 7, 0, Black))
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("single flip from the opening", func(t *testing.T) {
		b := NewBoard()
		next := ApplyMove(b, 2, 3, Black)

		require.Equal(t, Black, next[2][3])
		require.Equal(t, Black, next[3][3])
		black, white := CurrentScore(next)
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
		require.Equal(t, White, b[3][3], "input board must not change")
	})

	t.Run("every qualifying direction flips", func(t *testing.T) {
		b := boardOf(t,
			"X..X..X.",
			".O.O.O..",
			"..OOO...",
			"XOO.OOOX",
			"..OOO...",
			".O.O.O..",
			"X..X..X.",
			"........",
		)
		require.True(t, IsLegalMove(b, 3, 3, Black))
		require.Len(t, Flips(b, 3, 3, Black), 17)

		next := ApplyMove(b, 3, 3, Black)
		require.Equal(t, 0, next.Count(White))
		require.Equal(t, b.Count(Black)+17+1, next.Count(Black))
	})

	t.Run("only terminated runs flip", func(t *testing.T) {
		b := boardOf(t,
			"........",
			"........",
			"........",
			"..OO.OOX",
			"........",
			"........",
			"........",
			"........",
		)
		next := ApplyMove(b, 3, 4, Black)
		require.Equal(t, White, next[3][2])
		require.Equal(t, White, next[3][3])
		require.Equal(t, Black, next[3][5])
		require.Equal(t, Black, next[3][6])
		require.Equal(t, []Move{{3, 5}, {3, 6}}, Flips(b, 3, 4, Black))
	})

	t.Run("captures conserve piece count", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 11))
		for game := 0; game < 50; game++ {
			b := NewBoard()
			side := Black
			for i := 0; i < 60; i++ {
				moves := LegalMoves(b, side)
				if len(moves) == 0 {
					side = side.Opponent()
					moves = LegalMoves(b, side)
					if len(moves) == 0 {
						break
					}
				}
				m := moves[rng.IntN(len(moves))]
				black, white := CurrentScore(b)
				flips := len(Flips(b, m.Row, m.Col, side))
				next := ApplyMove(b, m.Row, m.Col, side)
				nb, nw := CurrentScore(next)

				require.Equal(t, black+white+1, nb+nw)
				require.Positive(t, flips)
				if side == Black {
					require.Equal(t, black+flips+1, nb)
				} else {
					require.Equal(t, white+flips+1, nw)
				}
				require.True(t, next.Valid())
				b = next
				side = side.Opponent()
			}
		}
	})
}

func TestOutcome(t *testing.T) {
	t.Run("opening is in progress", func(t *testing.T) {
		require.False(t, IsTerminal(NewBoard()))
		require.Equal(t, InProgress, DecideOutcome(NewBoard()))
	})

	t.Run("black has more pieces", func(t *testing.T) {
		b := boardOf(t,
			"XX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".......O",
		)
		require.True(t, IsTerminal(b))
		require.Equal(t, BlackWins, DecideOutcome(b))
	})

	t.Run("white has more pieces", func(t *testing.T) {
		b := boardOf(t,
			"X.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"......OO",
		)
		require.Equal(t, WhiteWins, DecideOutcome(b))
	})

	t.Run("equal counts draw", func(t *testing.T) {
		b := boardOf(t,
			"X.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".......O",
		)
		require.Equal(t, Draw, DecideOutcome(b))
	})

	t.Run("full board", func(t *testing.T) {
		var b Board
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if r < 4 {
					b[r][c] = Black
				} else {
					b[r][c] = White
				}
			}
		}
		require.Equal(t, Draw, DecideOutcome(b))
		b[7][7] = Black
		require.Equal(t, BlackWins, DecideOutcome(b))
	})
}

func TestParse(t *testing.T) {
	side, err := ParseSide("White")
	require.NoError(t, err)
	require.Equal(t, White, side)

	_, err = ParseSide("empty")
	require.ErrorIs(t, err, ErrInvalidSide)

	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	require.Equal(t, 5, d.Depth())
	require.Equal(t, 1, Easy.Depth())
	require.Equal(t, 3, Medium.Depth())

	_, err = ParseDifficulty("impossible")
	require.Error(t, err)

	m, err := ParseMode("player")
	require.NoError(t, err)
	require.Equal(t, ModeTwoPlayer, m)
}
