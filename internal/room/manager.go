package room

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"othello/internal/config"
	"othello/internal/game"
	"othello/internal/shared"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoMove       = errors.New("no legal move available")
	ErrInvalidSide  = game.ErrInvalidSide
)

// MoveResult is what a client needs after submitting a move: the move itself,
// any automated replies and the resulting room view.
type MoveResult struct {
	Move      shared.MoveEvent   `json:"move"`
	Automated []shared.MoveEvent `json:"automated"`
	Room      shared.Snapshot    `json:"room"`
}

type Manager struct {
	store     Store
	cfg       config.Config
	hub       Broadcaster
	collector *game.CountingCollector
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, hub: hub, collector: game.NewCountingCollector()}
}

// SetHub replaces the broadcaster. The hub needs the manager and the manager
// needs the hub, so one of them is wired after construction.
func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.hub = hub
}

func (m *Manager) Config() config.Config { return m.cfg }

// Stats exposes the search totals of every room.
func (m *Manager) Stats() *game.CountingCollector { return m.collector }

func (m *Manager) CreateRoom(mode game.Mode, d game.Difficulty) *Room {
	code := m.uniqueCode()
	now := time.Now()
	r := &Room{
		ID:        uuid.NewString(),
		Code:      code,
		State:     game.NewGame(mode, d),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.searcher = m.newSearcher(code)
	m.store.SaveRoom(r)
	log.Info().Str("room", code).Stringer("mode", mode).Stringer("difficulty", d).Msg("room created")
	return r
}

func (m *Manager) newSearcher(code string) *game.Searcher {
	opts := append(m.cfg.SearchOptions(),
		game.WithCollector(m.collector),
		game.WithLogger(log.With().Str("room", code).Logger()),
	)
	return game.NewSearcher(opts...)
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// Lookup is Get with an error for transports.
func (m *Manager) Lookup(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r, nil
}

// List returns every room, oldest first.
func (m *Manager) List() []*Room {
	rooms := m.store.ListRooms()
	slices.SortFunc(rooms, func(a, b *Room) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return rooms
}

func (m *Manager) Delete(code string) bool {
	ok := m.store.DeleteRoom(code)
	if ok {
		log.Info().Str("room", code).Msg("room deleted")
	}
	return ok
}

// ApplyMove plays side at (row,col). In CPU mode the automated opponent
// answers before ApplyMove returns, as many times as it keeps the move.
func (m *Manager) ApplyMove(r *Room, side game.Color, row, col int) (MoveResult, error) {
	r.mu.Lock()
	res, events, err := m.applyMove(r, side, row, col)
	r.mu.Unlock()
	m.flush(r.Code, events)
	return res, err
}

func (m *Manager) applyMove(r *Room, side game.Color, row, col int) (MoveResult, []event, error) {
	if !side.IsSide() {
		return MoveResult{}, nil, ErrInvalidSide
	}
	if r.State.Terminal() {
		return MoveResult{}, nil, ErrGameOver
	}
	if side != r.State.Turn || r.State.Mode == game.ModeCPU && side == game.White {
		return MoveResult{}, nil, fmt.Errorf("%w: %s to move", ErrNotYourTurn, r.State.Turn)
	}

	next, ok := game.TryMove(r.State, row, col, side)
	if !ok {
		log.Debug().Str("room", r.Code).Stringer("side", side).Int("row", row).Int("col", col).Msg("move rejected")
		return MoveResult{}, nil, fmt.Errorf("%w: %s at %s", ErrIllegalMove, side, game.Move{Row: row, Col: col})
	}
	r.State = next
	res := MoveResult{Move: moveEvent(next, false)}
	events := []event{{shared.EventMove, res.Move}}

	res.Automated, events = m.playAutomated(r, events)
	m.touch(r)

	res.Room = r.snapshot()
	events = m.published(r, res.Room, events)
	return res, events, nil
}

// BotMove lets the searcher play the side to move, then lets the automated
// opponent answer if the mode asks for it.
func (m *Manager) BotMove(r *Room) ([]shared.MoveEvent, error) {
	r.mu.Lock()
	played, events, err := m.botMove(r)
	r.mu.Unlock()
	m.flush(r.Code, events)
	return played, err
}

func (m *Manager) botMove(r *Room) ([]shared.MoveEvent, []event, error) {
	if r.State.Terminal() {
		return nil, nil, ErrGameOver
	}

	var played []shared.MoveEvent
	var events []event
	if r.State.AwaitingAutomated() {
		played, events = m.playAutomated(r, nil)
	} else {
		side := r.State.Turn
		mv, ok := r.searcher.BestMove(r.State.Board, side, r.State.Difficulty)
		if !ok {
			return nil, nil, ErrNoMove
		}
		next, applied := game.TryMove(r.State, mv.Row, mv.Col, side)
		if !applied {
			return nil, nil, fmt.Errorf("%w: %s at %s", ErrIllegalMove, side, mv)
		}
		r.State = next
		ev := moveEvent(next, true)
		var auto []shared.MoveEvent
		auto, events = m.playAutomated(r, []event{{shared.EventBotMove, ev}})
		played = append([]shared.MoveEvent{ev}, auto...)
	}
	if len(played) == 0 {
		return nil, nil, ErrNoMove
	}
	m.touch(r)
	return played, m.published(r, r.snapshot(), events), nil
}

func (m *Manager) playAutomated(r *Room, events []event) ([]shared.MoveEvent, []event) {
	var played []shared.MoveEvent
	for {
		next, mv, ok := game.StepAutomated(r.State, r.searcher)
		if !ok {
			return played, events
		}
		r.State = next
		ev := moveEvent(next, true)
		played = append(played, ev)
		events = append(events, event{shared.EventBotMove, ev})
		log.Debug().Str("room", r.Code).Stringer("move", mv).Int("flipped", len(ev.Flipped)).Msg("automated move")
	}
}

// Hint suggests a move for side. Nothing is suggested for the automated
// opponent or for a side that is not to move.
func (m *Manager) Hint(r *Room, side game.Color) (game.Move, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.Hint(r.State, r.searcher, side)
}

func (m *Manager) LegalMoves(r *Room, side game.Color) []game.Move {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.LegalMoves(r.State.Board, side)
}

func (m *Manager) Score(r *Room) shared.Score {
	r.mu.Lock()
	defer r.mu.Unlock()
	return score(r.State.Board)
}

// Reset starts a fresh game in r with the given mode and difficulty.
func (m *Manager) Reset(r *Room, mode game.Mode, d game.Difficulty) shared.Snapshot {
	r.mu.Lock()
	r.State = game.NewGame(mode, d)
	m.touch(r)
	snap := r.snapshot()
	r.mu.Unlock()

	m.hub.Broadcast(r.Code, shared.EventStateUpdated, snap)
	log.Info().Str("room", r.Code).Stringer("mode", mode).Stringer("difficulty", d).Msg("room reset")
	return snap
}

func (m *Manager) Snapshot(r *Room) shared.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (m *Manager) touch(r *Room) {
	r.UpdatedAt = time.Now()
	m.store.SaveRoom(r)
}

// event is a broadcast queued while the room lock is held. Broadcasters may
// call back into the manager, so nothing is sent until the lock is released.
type event struct {
	action string
	data   any
}

func (m *Manager) flush(code string, events []event) {
	for _, e := range events {
		m.hub.Broadcast(code, e.action, e.data)
	}
}

// published appends the state update, and game_over once the game ends.
func (m *Manager) published(r *Room, snap shared.Snapshot, events []event) []event {
	events = append(events, event{shared.EventStateUpdated, snap})
	if r.State.Terminal() {
		events = append(events, event{shared.EventGameOver, gameOver{Outcome: snap.Outcome, Score: snap.Score}})
		log.Info().Str("room", r.Code).Stringer("outcome", snap.Outcome).
			Int("black", snap.Score.Black).Int("white", snap.Score.White).Msg("game over")
	}
	return events
}

type gameOver struct {
	Outcome game.Outcome `json:"outcome"`
	Score   shared.Score `json:"score"`
}

func (r *Room) snapshot() shared.Snapshot {
	s := r.State
	legal := []game.Move{}
	if !s.Terminal() {
		legal = game.LegalMoves(s.Board, s.Turn)
	}
	flipped := s.Flipped
	if flipped == nil {
		flipped = []game.Move{}
	}
	return shared.Snapshot{
		ID:         r.ID,
		Code:       r.Code,
		Board:      s.Board,
		Turn:       s.Turn,
		Outcome:    s.Outcome,
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Score:      score(s.Board),
		LastMove:   s.LastMove,
		LastSide:   s.LastSide,
		Flipped:    flipped,
		Passed:     s.Passed(),
		Moves:      s.Moves,
		LegalMoves: legal,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func score(b game.Board) shared.Score {
	black, white := game.CurrentScore(b)
	return shared.Score{Black: black, White: white, Leader: game.Leader(b)}
}

func moveEvent(s game.State, automated bool) shared.MoveEvent {
	return shared.MoveEvent{
		Side:      s.LastSide,
		Move:      *s.LastMove,
		Flipped:   s.Flipped,
		Automated: automated,
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}

func (m *Manager) uniqueCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}
