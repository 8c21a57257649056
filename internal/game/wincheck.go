package game

// IsTerminal reports whether neither side has a legal move.
func IsTerminal(b Board) bool {
	return !HasLegalMove(b, Black) && !HasLegalMove(b, White)
}

// DecideOutcome returns InProgress while either side can move, and otherwise
// the side with more pieces, or Draw.
func DecideOutcome(b Board) Outcome {
	if !IsTerminal(b) {
		return InProgress
	}
	switch Leader(b) {
	case Black:
		return BlackWins
	case White:
		return WhiteWins
	}
	return Draw
}
