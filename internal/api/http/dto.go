package http

import (
	"othello/internal/game"
	"othello/internal/shared"
)

// CreateGameRequest is the payload of POST /games and POST /games/:code/reset.
// Empty fields fall back to the server configuration.
type CreateGameRequest struct {
	Mode       string `json:"mode,omitempty" binding:"omitempty,oneof=cpu player pvp two-player" example:"cpu"`
	Difficulty string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard" example:"medium"`
}

// MoveRequest places a piece for side at (row, col).
type MoveRequest struct {
	Side string `json:"side" binding:"required,oneof=black white" example:"black"`
	Row  *int   `json:"row" binding:"required,min=0,max=7" example:"2"`
	Col  *int   `json:"col" binding:"required,min=0,max=7" example:"3"`
}

type GameResponse struct {
	Game shared.Snapshot `json:"game"`
}

type GamesResponse struct {
	Games []shared.Snapshot `json:"games"`
}

type LegalMovesResponse struct {
	Side  game.Color  `json:"side"`
	Moves []game.Move `json:"moves"`
}

// HintResponse carries no move when the side may not ask for one.
type HintResponse struct {
	Side game.Color `json:"side"`
	Move *game.Move `json:"move"`
}

type BotMoveResponse struct {
	Moves []shared.MoveEvent `json:"moves"`
	Game  shared.Snapshot    `json:"game"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
