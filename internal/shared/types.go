package shared

import (
	"time"

	"othello/internal/game"
)

// Snapshot is the transport view of a room, shared by the HTTP API and the
// websocket hub.
type Snapshot struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Board      game.Board      `json:"board"`
	Turn       game.Color      `json:"turn"`
	Outcome    game.Outcome    `json:"outcome"`
	Mode       game.Mode       `json:"mode"`
	Difficulty game.Difficulty `json:"difficulty"`
	Score      Score           `json:"score"`
	LastMove   *game.Move      `json:"lastMove,omitempty"`
	LastSide   game.Color      `json:"lastSide"`
	Flipped    []game.Move     `json:"flipped"`
	Passed     bool            `json:"passed"`
	Moves      int             `json:"moves"`
	LegalMoves []game.Move     `json:"legalMoves"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type Score struct {
	Black  int        `json:"black"`
	White  int        `json:"white"`
	Leader game.Color `json:"leader"`
}

// MoveEvent describes one accepted move. Automated is set for moves chosen by
// the searcher.
type MoveEvent struct {
	Side      game.Color  `json:"side"`
	Move      game.Move   `json:"move"`
	Flipped   []game.Move `json:"flipped"`
	Automated bool        `json:"automated"`
}

// Event names pushed to websocket clients.
const (
	EventStateUpdated = "state-updated"
	EventMove         = "move"
	EventBotMove      = "bot_move"
	EventGameOver     = "game_over"
	EventHint         = "hint"
	EventError        = "error"
)
