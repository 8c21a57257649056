package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"othello/internal/game"
	"othello/internal/room"
	"othello/internal/shared"
)

// Message is the envelope used in both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type outgoing struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type MovePayload struct {
	Side string `json:"side"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

type HintPayload struct {
	Side string `json:"side"`
}

// client serialises writes; gorilla connections allow one concurrent writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(action string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(outgoing{Action: action, Data: data})
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades the request and streams events of the room named by the
// room_code query parameter.
// @Summary Room event stream
// @Description Websocket carrying state-updated, move, bot_move, hint and game_over events. Accepts move, hint and bot_move actions.
// @Tags Realtime
// @Param room_code query string true "Room code"
// @Router /ws [get]
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rm, err := h.roomManager.Lookup(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("room", roomCode).Msg("websocket upgrade failed")
		return
	}
	cl := &client{conn: conn}
	h.join(roomCode, cl)
	defer h.leave(roomCode, cl)
	log.Info().Str("room", roomCode).Msg("websocket client connected")

	if err := cl.send(shared.EventStateUpdated, h.roomManager.Snapshot(rm)); err != nil {
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Str("room", roomCode).Msg("websocket read ended")
			}
			return
		}
		if err := h.dispatch(cl, rm, msg); err != nil {
			_ = cl.send(shared.EventError, gin.H{"action": msg.Action, "error": err.Error()})
		}
	}
}

var errUnknownAction = errors.New("unknown action")

func (h *Hub) dispatch(cl *client, rm *room.Room, msg Message) error {
	switch msg.Action {
	case "move":
		var p MovePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return err
		}
		side, err := game.ParseSide(p.Side)
		if err != nil {
			return err
		}
		// the manager broadcasts the resulting events to every client
		_, err = h.roomManager.ApplyMove(rm, side, p.Row, p.Col)
		return err
	case "bot_move":
		_, err := h.roomManager.BotMove(rm)
		return err
	case "hint":
		var p HintPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return err
		}
		side, err := game.ParseSide(p.Side)
		if err != nil {
			return err
		}
		mv, ok := h.roomManager.Hint(rm, side)
		if !ok {
			return cl.send(shared.EventHint, gin.H{"side": side, "move": nil})
		}
		return cl.send(shared.EventHint, gin.H{"side": side, "move": mv})
	}
	log.Debug().Str("action", msg.Action).Msg("unknown websocket action")
	return errUnknownAction
}

func (h *Hub) join(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
}

func (h *Hub) leave(roomCode string, cl *client) {
	h.mu.Lock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
	h.mu.Unlock()
	_ = cl.conn.Close()
}

// Clients returns how many connections watch roomCode.
func (h *Hub) Clients(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

// Broadcast sends an event to every client of roomCode. Clients that fail a
// write are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.send(action, data); err != nil {
			log.Warn().Err(err).Str("room", roomCode).Str("action", action).Msg("dropping websocket client")
			h.leave(roomCode, cl)
		}
	}
}
