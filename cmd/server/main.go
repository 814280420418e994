package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/namaz/internal/config"
	"github.com/Nixie-Tech-LLC/namaz/internal/http/api/prayers/endpoints"
	"github.com/Nixie-Tech-LLC/namaz/internal/schedule"
)

func main() {
	LoadDotEnv()

	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	SetupLogger(cfg)

	store := InitStore(cfg)
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()

	provider, cache := InitProvider(cfg)
	if cache != nil {
		defer cache.Close()
	}

	var notifier endpoints.Notifier
	if n := InitNotifier(cfg); n != nil {
		defer n.Close()
		notifier = n
	}

	assembler := schedule.NewAssembler(provider, store, cfg.UpstreamTimeout)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, cfg, assembler, store, notifier, LoadTemplates())

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
