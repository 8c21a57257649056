package game

// CurrentScore counts the pieces of each side.
func CurrentScore(b Board) (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Leader returns the side holding more pieces, or Empty on equal counts.
func Leader(b Board) Color {
	black, white := CurrentScore(b)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}
