package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/feedbackhub/feedback-portal/internal/api"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
	"github.com/feedbackhub/feedback-portal/internal/core/service"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/config"
	redisdb "github.com/feedbackhub/feedback-portal/internal/infrastructure/db/redis"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/directus"
	"github.com/feedbackhub/feedback-portal/internal/infrastructure/session"
	"github.com/feedbackhub/feedback-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Redis backs the role cache only; the portal runs uncached without it.
	var rdb *goredis.Client
	var roleCache ports.RoleCache
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			logg.Warn().Err(err).Msg("redis unavailable, role cache disabled")
			rdb = nil
		} else {
			roleCache = redisdb.NewRoleCache(rdb)
			defer rdb.Close()
		}
	}

	backend := directus.NewClient(cfg.DirectusURL, logg)
	codec := session.NewCodec(cfg.CookieSecret)

	e := api.NewRouter(api.Dependencies{
		Auth:         service.NewAuthService(backend, logg),
		Feedback:     service.NewFeedbackService(backend, logg),
		Roles:        service.NewRoleService(backend, roleCache, logg),
		Codec:        codec,
		Backend:      backend,
		Redis:        rdb,
		PublicRoleID: cfg.PublicRoleID,
		Log:          logg,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting feedback portal")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
