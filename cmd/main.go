package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"control-ads/db/migrations"
	httpadapter "control-ads/internal/adapter/http"
	"control-ads/internal/adapter/postgres"
	"control-ads/internal/adapter/usecase"
	"control-ads/internal/config"
	"control-ads/internal/core/analytics"
	"control-ads/internal/db"
	"control-ads/internal/metrics"
)

// main is the entry point of the control-ads service. It loads
// configuration, optionally runs database migrations and seeds demo data,
// wires repositories and use cases, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data ready")
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	breaker := db.NewBreaker("postgres", cfg.Breaker, logger, m)
	projectRepo := postgres.NewProjectRepository(pool, breaker)
	campaignRepo := postgres.NewCampaignRepository(pool, breaker)
	contentRepo := postgres.NewContentRepository(pool, breaker)

	engine := analytics.NewEngine(cfg.Analytics.Thresholds())
	svc := httpadapter.Services{
		Projects:  usecase.NewProjectUseCase(projectRepo),
		Campaigns: usecase.NewCampaignUseCase(projectRepo, campaignRepo, contentRepo),
		Contents:  usecase.NewContentUseCase(projectRepo, contentRepo),
		Analytics: usecase.NewAnalyticsUseCase(projectRepo, campaignRepo, contentRepo, engine),
	}

	handler := httpadapter.NewHandler(svc, cfg.HTTP, pool, m, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
