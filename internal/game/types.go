package game

import (
	"fmt"
	"strings"
)

const Size = 8

// Color is the content of a board cell. Black and White are the two sides;
// Empty is never a side.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

func (c Color) IsSide() bool { return c == Black || c == White }

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	case "empty", "":
		return Empty, nil
	}
	return Empty, fmt.Errorf("unknown color %q", s)
}

// ParseSide is ParseColor restricted to the two playable sides.
func ParseSide(s string) (Color, error) {
	c, err := ParseColor(s)
	if err != nil {
		return Empty, err
	}
	if !c.IsSide() {
		return Empty, ErrInvalidSide
	}
	return c, nil
}

// Board is an 8x8 grid indexed [row][col]. It is a value type: assigning or
// passing a Board copies all 64 cells.
type Board [Size][Size]Color

func NewBoard() Board {
	var b Board
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
	return b
}

func (b Board) Count(c Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Valid reports whether every cell holds one of the three known colors.
func (b Board) Valid() bool {
	return b.Count(Empty)+b.Count(Black)+b.Count(White) == Size*Size
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.Row, m.Col) }

type Outcome uint8

const (
	InProgress Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black_wins"
	case WhiteWins:
		return "white_wins"
	case Draw:
		return "draw"
	}
	return "in_progress"
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(b []byte) error {
	for _, v := range []Outcome{InProgress, BlackWins, WhiteWins, Draw} {
		if v.String() == string(b) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", b)
}

// Difficulty selects search depth and, for Easy, a non-searching policy.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 5
	}
	return 3
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return "medium"
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// Mode decides whether White is played by the automated opponent.
type Mode uint8

const (
	ModeCPU Mode = iota
	ModeTwoPlayer
)

func (m Mode) String() string {
	if m == ModeTwoPlayer {
		return "player"
	}
	return "cpu"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu", "":
		return ModeCPU, nil
	case "player", "pvp", "two-player":
		return ModeTwoPlayer, nil
	}
	return ModeCPU, fmt.Errorf("unknown game mode %q", s)
}
