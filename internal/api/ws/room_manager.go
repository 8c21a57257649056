package ws

import (
	"othello/internal/game"
	"othello/internal/room"
	"othello/internal/shared"
)

// RoomManager is the part of room.Manager the hub drives.
type RoomManager interface {
	Lookup(code string) (*room.Room, error)
	ApplyMove(r *room.Room, side game.Color, row, col int) (room.MoveResult, error)
	BotMove(r *room.Room) ([]shared.MoveEvent, error)
	Hint(r *room.Room, side game.Color) (game.Move, bool)
	Snapshot(r *room.Room) shared.Snapshot
}
