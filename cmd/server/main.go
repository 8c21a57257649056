package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// swagger packages
	_ "othello/docs"
	httpapi "othello/internal/api/http"
	"othello/internal/api/ws"
	"othello/internal/config"
	"othello/internal/room"
	"othello/internal/store"
)

// @title Othello API
// @version 1.0
// @description Othello rules engine and minimax opponent over HTTP and websocket (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	loaded, err := config.Get()
	cfg := *loaded
	config.SetupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Level() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, hub)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Stringer("mode", cfg.Mode).Stringer("difficulty", cfg.Difficulty).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
