package game

// State is the game controller state. It is either awaiting a move from Turn
// (Outcome == InProgress) or terminal.
type State struct {
	Board      Board      `json:"board"`
	Turn       Color      `json:"turn"`
	Outcome    Outcome    `json:"outcome"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	LastMove   *Move      `json:"lastMove,omitempty"`
	LastSide   Color      `json:"lastSide"`
	Flipped    []Move     `json:"flipped"`
	Moves      int        `json:"moves"`
}

// NewGame returns the initial state with Black to move.
func NewGame(mode Mode, d Difficulty) State {
	return State{
		Board:      NewBoard(),
		Turn:       Black,
		Outcome:    InProgress,
		Mode:       mode,
		Difficulty: d,
	}
}

// StateFromBoard builds a controller state around an arbitrary position with
// turn to move. The outcome is derived from the board.
func StateFromBoard(b Board, turn Color, mode Mode, d Difficulty) State {
	st := State{Board: b, Turn: turn, Mode: mode, Difficulty: d}
	st.Outcome = DecideOutcome(b)
	return st
}

func (s State) Terminal() bool { return s.Outcome != InProgress }

// AwaitingAutomated reports whether the automated opponent is to move.
func (s State) AwaitingAutomated() bool {
	return s.Mode == ModeCPU && !s.Terminal() && s.Turn == White
}

// Passed reports whether the last move kept its mover on turn because the
// opponent had no legal reply.
func (s State) Passed() bool {
	return s.LastMove != nil && !s.Terminal() && s.Turn == s.LastSide
}

// TryMove applies a move by side at (row,col). It returns the unchanged state
// and false when the game is over, side is not to move, or the move is
// illegal. Otherwise the move and its captures are applied and the turn passes
// to the opponent; if the opponent has no legal move the mover keeps the turn,
// and if neither side can move the game ends.
func TryMove(s State, row, col int, side Color) (State, bool) {
	if s.Terminal() || side != s.Turn || !IsLegalMove(s.Board, row, col, side) {
		return s, false
	}

	next := s
	next.Flipped = Flips(s.Board, row, col, side)
	next.Board = ApplyMove(s.Board, row, col, side)
	next.LastMove = &Move{Row: row, Col: col}
	next.LastSide = side
	next.Moves = s.Moves + 1

	opp := side.Opponent()
	switch {
	case HasLegalMove(next.Board, opp):
		next.Turn = opp
	case !HasLegalMove(next.Board, side):
		next.Outcome = DecideOutcome(next.Board)
	default:
		next.Turn = side
	}
	return next, true
}

// Hint returns the move suggested for side, using the state's difficulty.
// Nothing is suggested when side is not to move or is the automated opponent.
func Hint(s State, searcher *Searcher, side Color) (Move, bool) {
	if s.Terminal() || side != s.Turn {
		return Move{}, false
	}
	if s.Mode == ModeCPU && side == White {
		return Move{}, false
	}
	return searcher.BestMove(s.Board, side, s.Difficulty)
}

// StepAutomated makes a single automated move if one is due. The move goes
// through TryMove like any other.
func StepAutomated(s State, searcher *Searcher) (State, Move, bool) {
	if !s.AwaitingAutomated() {
		return s, Move{}, false
	}
	m, ok := searcher.BestMove(s.Board, White, s.Difficulty)
	if !ok {
		return s, Move{}, false
	}
	next, applied := TryMove(s, m.Row, m.Col, White)
	if !applied {
		return s, Move{}, false
	}
	return next, m, true
}

// PlayAutomated lets the automated opponent move until it is no longer its
// turn, which covers the opponent keeping the move after a pass. The moves
// made are returned in order.
func PlayAutomated(s State, searcher *Searcher) (State, []Move) {
	var played []Move
	for {
		next, m, ok := StepAutomated(s, searcher)
		if !ok {
			return s, played
		}
		s = next
		played = append(played, m)
	}
}
