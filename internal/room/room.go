package room

import (
	"sync"
	"time"

	"othello/internal/game"
)

// Room is one game session rendered by a single client. All access to State
// goes through the Manager, which holds mu.
type Room struct {
	ID        string
	Code      string
	State     game.State
	CreatedAt time.Time
	UpdatedAt time.Time

	mu       sync.Mutex
	searcher *game.Searcher
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	ListRooms() []*Room
	DeleteRoom(code string) bool
}
