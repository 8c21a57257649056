package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	_ "othello/docs"
	"othello/internal/api/ws"
	"othello/internal/config"
	"othello/internal/game"
	"othello/internal/room"
	"othello/internal/shared"
	"othello/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Search.Seed = 11
	rm := room.NewManager(store.NewMemoryStore(), cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	return NewRouter(rm, hub)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, method, path, body string, contentLength int64) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = contentLength
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createGame(t *testing.T, r *gin.Engine, req CreateGameRequest) shared.Snapshot {
	t.Helper()
	w := do(t, r, http.MethodPost, "/games", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[GameResponse](t, w).Game
}

func intp(v int) *int { return &v }

func TestCreateGame(t *testing.T) {
	r := newTestRouter(t)

	t.Run("defaults", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/games", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		g := decode[GameResponse](t, w).Game
		require.Equal(t, game.ModeCPU, g.Mode)
		require.Equal(t, game.Medium, g.Difficulty)
		require.Equal(t, game.NewBoard(), g.Board)
		require.Equal(t, game.Black, g.Turn)
		require.Equal(t, game.InProgress, g.Outcome)
	})

	t.Run("explicit", func(t *testing.T) {
		g := createGame(t, r, CreateGameRequest{Mode: "player", Difficulty: "hard"})
		require.Equal(t, game.ModeTwoPlayer, g.Mode)
		require.Equal(t, game.Hard, g.Difficulty)
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/games", CreateGameRequest{Difficulty: "insane"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	w := do(t, r, http.MethodGet, "/games", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[GamesResponse](t, w).Games, 2)
}

func TestGameNotFound(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/games/NOPE00", "/games/NOPE00/legal-moves", "/games/NOPE00/hint", "/games/NOPE00/score"} {
		w := do(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
		require.Contains(t, decode[ErrorResponse](t, w).Error, "room not found")
	}
	w := do(t, r, http.MethodDelete, "/games/NOPE00", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	g := createGame(t, r, CreateGameRequest{Mode: "cpu", Difficulty: "medium"})
	path := "/games/" + g.Code + "/move"

	t.Run("validation", func(t *testing.T) {
		w := do(t, r, http.MethodPost, path, map[string]any{"side": "black", "row": 2})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = do(t, r, http.MethodPost, path, MoveRequest{Side: "black", Row: intp(8), Col: intp(0)})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = do(t, r, http.MethodPost, path, MoveRequest{Side: "grey", Row: intp(2), Col: intp(3)})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("illegal and out of turn", func(t *testing.T) {
		w := do(t, r, http.MethodPost, path, MoveRequest{Side: "black", Row: intp(0), Col: intp(0)})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = do(t, r, http.MethodPost, path, MoveRequest{Side: "white", Row: intp(2), Col: intp(4)})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("computer replies", func(t *testing.T) {
		w := do(t, r, http.MethodPost, path, MoveRequest{Side: "black", Row: intp(2), Col: intp(3)})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decode[room.MoveResult](t, w)
		require.Equal(t, game.Move{Row: 2, Col: 3}, res.Move.Move)
		require.Len(t, res.Automated, 1)
		require.Equal(t, game.Black, res.Room.Turn)
		require.Equal(t, 2, res.Room.Moves)
		require.NotEmpty(t, res.Room.LegalMoves)
	})

	w := do(t, r, http.MethodGet, "/games/"+g.Code+"/score", nil)
	require.Equal(t, http.StatusOK, w.Code)
	score := decode[shared.Score](t, w)
	require.Equal(t, 6, score.Black+score.White)
}

func TestLegalMovesAndHint(t *testing.T) {
	r := newTestRouter(t)
	g := createGame(t, r, CreateGameRequest{Mode: "cpu"})
	base := "/games/" + g.Code

	w := do(t, r, http.MethodGet, base+"/legal-moves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lm := decode[LegalMovesResponse](t, w)
	require.Equal(t, game.Black, lm.Side)
	require.Equal(t, []game.Move{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, lm.Moves)

	w = do(t, r, http.MethodGet, base+"/legal-moves?side=white", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []game.Move{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}, decode[LegalMovesResponse](t, w).Moves)

	w = do(t, r, http.MethodGet, base+"/legal-moves?side=empty", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, base+"/hint?side=black", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hint := decode[HintResponse](t, w)
	require.NotNil(t, hint.Move)
	require.Contains(t, lm.Moves, *hint.Move)

	w = do(t, r, http.MethodGet, base+"/hint?side=white", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode[HintResponse](t, w).Move, "no hints for the computer's side")
}

func TestBotMoveAndReset(t *testing.T) {
	r := newTestRouter(t)
	g := createGame(t, r, CreateGameRequest{Mode: "player", Difficulty: "easy"})
	base := "/games/" + g.Code

	w := do(t, r, http.MethodPost, base+"/bot-move", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bm := decode[BotMoveResponse](t, w)
	require.Len(t, bm.Moves, 1)
	require.Equal(t, game.White, bm.Game.Turn)

	w = do(t, r, http.MethodPost, base+"/reset", CreateGameRequest{Difficulty: "hard"})
	require.Equal(t, http.StatusOK, w.Code)
	reset := decode[GameResponse](t, w).Game
	require.Equal(t, game.NewBoard(), reset.Board)
	require.Equal(t, game.ModeTwoPlayer, reset.Mode, "mode is kept when not given")
	require.Equal(t, game.Hard, reset.Difficulty)
	require.Zero(t, reset.Moves)

	w = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfigAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cfg := decode[ConfigResponse](t, w)
	require.Equal(t, map[string]int{"easy": 1, "medium": 3, "hard": 5}, cfg.Depths)
	require.Equal(t, game.ModeCPU, cfg.Config.Mode)

	createGame(t, r, CreateGameRequest{})
	w = do(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[HealthResponse](t, w)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, 1, health.Games)

	w = do(t, r, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/games/{code}/move")
}

func TestResetKeepsUnsetFields(t *testing.T) {
	r := newTestRouter(t)
	g := createGame(t, r, CreateGameRequest{Mode: "player", Difficulty: "easy"})
	path := "/games/" + g.Code + "/reset"

	body := `{"mode":"","difficulty":"hard"}`
	w := doRaw(t, r, http.MethodPost, path, body, int64(len(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reset := decode[GameResponse](t, w).Game
	require.Equal(t, game.ModeTwoPlayer, reset.Mode)
	require.Equal(t, game.Hard, reset.Difficulty)

	body = `{"difficulty":""}`
	w = doRaw(t, r, http.MethodPost, path, body, int64(len(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reset = decode[GameResponse](t, w).Game
	require.Equal(t, game.ModeTwoPlayer, reset.Mode)
	require.Equal(t, game.Hard, reset.Difficulty)
}

func TestEmptyChunkedBody(t *testing.T) {
	r := newTestRouter(t)

	w := doRaw(t, r, http.MethodPost, "/games", "", -1)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	g := decode[GameResponse](t, w).Game
	require.Equal(t, game.ModeCPU, g.Mode)

	w = doRaw(t, r, http.MethodPost, "/games/"+g.Code+"/reset", "", -1)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, game.ModeCPU, decode[GameResponse](t, w).Game.Mode)

	w = doRaw(t, r, http.MethodPost, "/games", "{", -1)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
