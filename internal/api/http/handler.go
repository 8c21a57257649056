package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"othello/internal/game"
	"othello/internal/room"
	"othello/internal/shared"
)

func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, room.ErrInvalidSide):
		status = http.StatusBadRequest
	case errors.Is(err, room.ErrIllegalMove):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, room.ErrNotYourTurn), errors.Is(err, room.ErrGameOver), errors.Is(err, room.ErrNoMove):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// bindOptionalJSON binds a request body that may be absent. An empty body,
// chunked or not, leaves req untouched.
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// modeAndDifficulty resolves a create or reset request. Empty fields keep
// the given fallbacks.
func modeAndDifficulty(req CreateGameRequest, mode game.Mode, d game.Difficulty) (game.Mode, game.Difficulty, error) {
	if req.Mode != "" {
		m, err := game.ParseMode(req.Mode)
		if err != nil {
			return mode, d, err
		}
		mode = m
	}
	if req.Difficulty != "" {
		v, err := game.ParseDifficulty(req.Difficulty)
		if err != nil {
			return mode, d, err
		}
		d = v
	}
	return mode, d, nil
}

// sideParam reads ?side=, defaulting to the side to move.
func sideParam(c *gin.Context, snap shared.Snapshot) (game.Color, error) {
	raw := c.Query("side")
	if raw == "" {
		return snap.Turn, nil
	}
	return game.ParseSide(raw)
}

// @Summary Create a game
// @Description Start a new game. Black always moves first; in cpu mode White is played by the computer.
// @Tags Game
// @Accept json
// @Produce json
// @Param request body CreateGameRequest false "Mode and difficulty"
// @Success 201 {object} GameResponse
// @Failure 400 {object} ErrorResponse
// @Router /games [post]
func CreateGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := bindOptionalJSON(c, &req); err != nil {
			badRequest(c, err)
			return
		}
		cfg := rm.Config()
		mode, d, err := modeAndDifficulty(req, cfg.Mode, cfg.Difficulty)
		if err != nil {
			badRequest(c, err)
			return
		}
		r := rm.CreateRoom(mode, d)
		c.JSON(http.StatusCreated, GameResponse{Game: rm.Snapshot(r)})
	}
}

// @Summary List games
// @Tags Game
// @Produce json
// @Success 200 {object} GamesResponse
// @Router /games [get]
func ListGamesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms := rm.List()
		out := make([]shared.Snapshot, 0, len(rooms))
		for _, r := range rooms {
			out = append(out, rm.Snapshot(r))
		}
		c.JSON(http.StatusOK, GamesResponse{Games: out})
	}
}

// @Summary Get a game
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Success 200 {object} GameResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{code} [get]
func GetGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, GameResponse{Game: rm.Snapshot(r)})
	}
}

// @Summary Delete a game
// @Tags Game
// @Param code path string true "Game code"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /games/{code} [delete]
func DeleteGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if !rm.Delete(code) {
			abortWithError(c, room.ErrRoomNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Legal moves
// @Description Cells where side may play, in row-major order. side defaults to the side to move.
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Param side query string false "black or white"
// @Success 200 {object} LegalMovesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{code}/legal-moves [get]
func LegalMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		side, err := sideParam(c, rm.Snapshot(r))
		if err != nil {
			badRequest(c, err)
			return
		}
		moves := rm.LegalMoves(r, side)
		if moves == nil {
			moves = []game.Move{}
		}
		c.JSON(http.StatusOK, LegalMovesResponse{Side: side, Moves: moves})
	}
}

// @Summary Play a move
// @Description Places a piece and flips captured runs. In cpu mode the computer's replies are included.
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Game code"
// @Param request body MoveRequest true "Move"
// @Success 200 {object} room.MoveResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /games/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		side, err := game.ParseSide(req.Side)
		if err != nil {
			badRequest(c, err)
			return
		}
		res, err := rm.ApplyMove(r, side, *req.Row, *req.Col)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Let the computer move
// @Description The searcher plays the side to move at the game's difficulty.
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Success 200 {object} BotMoveResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /games/{code}/bot-move [post]
func BotMoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		played, err := rm.BotMove(r)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, BotMoveResponse{Moves: played, Game: rm.Snapshot(r)})
	}
}

// @Summary Hint
// @Description Suggested move for side. The move is null for the computer's side or a side not to move.
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Param side query string false "black or white"
// @Success 200 {object} HintResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{code}/hint [get]
func HintHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		side, err := sideParam(c, rm.Snapshot(r))
		if err != nil {
			badRequest(c, err)
			return
		}
		resp := HintResponse{Side: side}
		if mv, ok := rm.Hint(r, side); ok {
			resp.Move = &mv
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Reset a game
// @Description Restart from the opening position, optionally switching mode or difficulty.
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Game code"
// @Param request body CreateGameRequest false "Mode and difficulty"
// @Success 200 {object} GameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/{code}/reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		var req CreateGameRequest
		if err := bindOptionalJSON(c, &req); err != nil {
			badRequest(c, err)
			return
		}
		snap := rm.Snapshot(r)
		mode, d, err := modeAndDifficulty(req, snap.Mode, snap.Difficulty)
		if err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, GameResponse{Game: rm.Reset(r, mode, d)})
	}
}

// @Summary Score
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Success 200 {object} shared.Score
// @Failure 404 {object} ErrorResponse
// @Router /games/{code}/score [get]
func ScoreHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := rm.Lookup(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rm.Score(r))
	}
}
