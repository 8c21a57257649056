package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"othello/internal/api/ws"
	"othello/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	// websocket for live board updates
	r.GET("/ws", hub.HandleWS)

	// --- GAME ENDPOINTS ---
	games := r.Group("/games")
	games.POST("", CreateGameHandler(rm))
	games.GET("", ListGamesHandler(rm))
	games.GET("/:code", GetGameHandler(rm))
	games.DELETE("/:code", DeleteGameHandler(rm))
	games.GET("/:code/legal-moves", LegalMovesHandler(rm))
	games.POST("/:code/move", MoveHandler(rm))
	games.POST("/:code/bot-move", BotMoveHandler(rm))
	games.GET("/:code/hint", HintHandler(rm))
	games.POST("/:code/reset", ResetHandler(rm))
	games.GET("/:code/score", ScoreHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(rm)
	r.GET("/config", ch.GetConfigHandler)
	r.GET("/healthz", ch.HealthHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	return r
}
