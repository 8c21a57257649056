package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EasyCandidates is how many leading legal moves the Easy policy picks from.
const EasyCandidates = 3

type Option func(s *Searcher)

// WithRand injects the randomness source of the Easy policy.
func WithRand(r *rand.Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rng = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithAlphaBeta scores root moves with alpha-beta instead of plain minimax.
// Scores, and therefore chosen moves, are identical.
func WithAlphaBeta(enabled bool) Option {
	return func(s *Searcher) {
		s.alphaBeta = enabled
	}
}

func WithCollector(c Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.collector = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = l
	}
}

// Searcher picks moves for the automated opponent and for hints. It is not
// safe for concurrent use because of its randomness source.
type Searcher struct {
	rng       *rand.Rand
	alphaBeta bool
	collector Collector
	log       zerolog.Logger
}

func NewSearcher(options ...Option) *Searcher {
	seed := uint64(time.Now().UnixNano())
	s := &Searcher{
		rng:       rand.New(rand.NewPCG(seed, seed>>1)),
		collector: noCollector{},
		log:       log.Logger,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// BestMove returns the move chosen for side at the given difficulty, or false
// when side has no legal move. b is never modified.
func (s *Searcher) BestMove(b Board, side Color, d Difficulty) (Move, bool) {
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Move{}, false
	}

	if d == Easy {
		n := min(EasyCandidates, len(moves))
		m := moves[s.rng.IntN(n)]
		s.collector.Record(SearchMetrics{Side: side, Difficulty: d, Depth: d.Depth(), Candidates: n})
		return m, true
	}

	start := time.Now()
	depth := d.Depth()
	maximizing := side == White
	var st search

	best := moves[0]
	bestScore := math.MinInt
	if !maximizing {
		bestScore = math.MaxInt
	}
	for _, m := range moves {
		child := ApplyMove(b, m.Row, m.Col, side)
		var score int
		if s.alphaBeta {
			score = st.alphaBeta(child, depth-1, math.MinInt, math.MaxInt, side.Opponent(), maximizing)
		} else {
			score = st.minimax(child, depth-1, side.Opponent(), maximizing)
		}
		if maximizing && score > bestScore || !maximizing && score < bestScore {
			bestScore = score
			best = m
		}
	}

	metrics := SearchMetrics{
		Side:       side,
		Difficulty: d,
		Depth:      depth,
		Candidates: len(moves),
		Nodes:      st.nodes,
		Duration:   time.Since(start),
	}
	s.collector.Record(metrics)
	s.log.Debug().
		Str("side", side.String()).
		Str("difficulty", d.String()).
		Int64("nodes", st.nodes).
		Int("score", bestScore).
		Stringer("move", best).
		Dur("elapsed", metrics.Duration).
		Msg("search complete")
	return best, true
}

// Minimax is the full-width fixed-depth search value of b with sideToMove to
// play. A side without legal moves ends its branch at the static evaluation;
// the side to move alternates strictly with each ply.
func Minimax(b Board, depth int, sideToMove Color, maximizing bool) int {
	var st search
	return st.minimax(b, depth, sideToMove, maximizing)
}

// AlphaBeta returns the same value as Minimax when called with the full
// window (math.MinInt, math.MaxInt), visiting fewer nodes.
func AlphaBeta(b Board, depth, alpha, beta int, sideToMove Color, maximizing bool) int {
	var st search
	return st.alphaBeta(b, depth, alpha, beta, sideToMove, maximizing)
}

type search struct {
	nodes int64
}

func (st *search) minimax(b Board, depth int, side Color, maximizing bool) int {
	st.nodes++
	if depth == 0 {
		return Evaluate(b)
	}
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Evaluate(b)
	}

	if maximizing {
		best := math.MinInt
		for _, m := range moves {
			best = max(best, st.minimax(ApplyMove(b, m.Row, m.Col, side), depth-1, side.Opponent(), false))
		}
		return best
	}
	best := math.MaxInt
	for _, m := range moves {
		best = min(best, st.minimax(ApplyMove(b, m.Row, m.Col, side), depth-1, side.Opponent(), true))
	}
	return best
}

func (st *search) alphaBeta(b Board, depth, alpha, beta int, side Color, maximizing bool) int {
	st.nodes++
	if depth == 0 {
		return Evaluate(b)
	}
	moves := LegalMoves(b, side)
	if len(moves) == 0 {
		return Evaluate(b)
	}

	if maximizing {
		best := math.MinInt
		for _, m := range moves {
			best = max(best, st.alphaBeta(ApplyMove(b, m.Row, m.Col, side), depth-1, alpha, beta, side.Opponent(), false))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}
	best := math.MaxInt
	for _, m := range moves {
		best = min(best, st.alphaBeta(ApplyMove(b, m.Row, m.Col, side), depth-1, alpha, beta, side.Opponent(), true))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}
