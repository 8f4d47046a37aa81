package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api"
	"github.com/blkboxlogictc/AtlanteRealty/internal/config"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/domain"
	"github.com/blkboxlogictc/AtlanteRealty/internal/core/service"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/fixtures"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/memstore"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/webhook"
	"github.com/blkboxlogictc/AtlanteRealty/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := memstore.New()
	loader := fixtures.NewLoader(cfg.DataDir, log)

	forwarder := webhook.NewForwarder(cfg.Webhooks.Timeout, cfg.Webhooks.Workers, log)
	forwarder.Start(ctx)

	seedAdmin(ctx, cfg, store, log)

	e := api.NewRouter(cfg, store, store, loader, forwarder, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("data_dir", cfg.DataDir).Msg("atlante site api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin creates the single internal account when credentials are
// configured. The internal surface stays unreachable without it.
func seedAdmin(ctx context.Context, cfg *config.Config, store *memstore.Store, log zerolog.Logger) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}

	auth := service.NewAuthService(store, cfg.JWTSecret, 24*time.Hour)
	if _, err := auth.Register(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil && !errors.Is(err, domain.ErrUserExists) {
		log.Error().Err(err).Msg("could not seed admin user")
	}
}
