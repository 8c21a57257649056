package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"othello/internal/config"
	"othello/internal/game"
	"othello/internal/room"
)

type ConfigHandler struct {
	rm *room.Manager
}

func NewConfigHandler(rm *room.Manager) *ConfigHandler {
	return &ConfigHandler{rm: rm}
}

// ConfigResponse shows the defaults new games are created with.
type ConfigResponse struct {
	Config config.Config  `json:"config"`
	Depths map[string]int `json:"depths"`
}

// GetConfigHandler returns the effective server configuration
// @Summary Server configuration
// @Description Default mode and difficulty for new games, search settings and the depth of each difficulty
// @Tags Config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func (h *ConfigHandler) GetConfigHandler(c *gin.Context) {
	depths := map[string]int{}
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		depths[d.String()] = d.Depth()
	}
	c.JSON(http.StatusOK, ConfigResponse{Config: h.rm.Config(), Depths: depths})
}

type HealthResponse struct {
	Status   string `json:"status"`
	Games    int    `json:"games"`
	Searches int64  `json:"searches"`
	Nodes    int64  `json:"nodes"`
}

// HealthHandler reports liveness and search totals
// @Summary Health check
// @Tags Config
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *ConfigHandler) HealthHandler(c *gin.Context) {
	stats := h.rm.Stats()
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Games:    len(h.rm.List()),
		Searches: stats.Searches(),
		Nodes:    stats.Nodes(),
	})
}
