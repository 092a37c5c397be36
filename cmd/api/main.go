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

	"github.com/BruksfildServices01/calendar-scheduler/internal/audit"
	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/calendar-scheduler/internal/db"
	domain "github.com/BruksfildServices01/calendar-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/calendar-scheduler/internal/google"
	infraRepo "github.com/BruksfildServices01/calendar-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/calendar-scheduler/internal/logger"
	"github.com/BruksfildServices01/calendar-scheduler/internal/middleware"
	"github.com/BruksfildServices01/calendar-scheduler/internal/ratelimit"
	"github.com/BruksfildServices01/calendar-scheduler/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("calendar-api", "info")
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New("calendar-api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newRepository(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}

	limiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up rate limiter")
	}

	dispatcher := audit.NewDispatcher(audit.New(repo), log)
	defer dispatcher.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:  cfg,
		Repo:    repo,
		Limiter: limiter,
		Google:  google.NewClient(cfg.Google),
		Auditor: dispatcher,
		Log:     log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("storage", cfg.Storage).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
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

func newRepository(cfg *config.Config, log zerolog.Logger) (domain.Repository, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return infraRepo.NewSchedulingMemoryRepository(), nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	return infraRepo.NewSchedulingGormRepository(db), nil
}

func newLimiter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ratelimit.Limiter, error) {
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("rate limiting through redis")
		return ratelimit.NewRedisLimiter(client, cfg.RateLimitBurst, time.Minute), nil
	}

	l := ratelimit.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go l.RunSweeper(ctx)
	return l, nil
}
