package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cafeteria-admin/internal/bootstrap"
	"cafeteria-admin/internal/config"
	"cafeteria-admin/internal/router"
	"cafeteria-admin/internal/ws"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	bootstrap.SetupLogger(cfg)

	// 2. Setup store
	store, err := bootstrap.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	// 3. Setup WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// 4. Wire layers
	app := router.New(store, router.Options{
		Hub:            hub,
		DatabaseURLSet: cfg.DatabaseURLSet,
	})

	// 5. Graceful shutdown
	go func() {
		addr := ":" + strconv.Itoa(cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("store close")
	}
	log.Info().Msg("server exited")
}
