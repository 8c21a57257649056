package game

const (
	MaterialWeight = 1
	CornerBonus    = 10
	EdgeBonus      = 2
)

func isCorner(r, c int) bool {
	return (r == 0 || r == Size-1) && (c == 0 || c == Size-1)
}

func isEdge(r, c int) bool {
	return r == 0 || r == Size-1 || c == 0 || c == Size-1
}

// Evaluate scores b from White's point of view: positive favors White,
// negative favors Black. Every piece counts MaterialWeight, a corner adds
// CornerBonus on top and any other border cell adds EdgeBonus.
func Evaluate(b Board) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			var sign int
			switch b[r][c] {
			case White:
				sign = 1
			case Black:
				sign = -1
			default:
				continue
			}
			w := MaterialWeight
			if isCorner(r, c) {
				w += CornerBonus
			} else if isEdge(r, c) {
				w += EdgeBonus
			}
			score += sign * w
		}
	}
	return score
}
