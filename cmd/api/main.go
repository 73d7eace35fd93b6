package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmagpayo/yieldtrack-backend/internal/api"
	"github.com/kmagpayo/yieldtrack-backend/internal/api/handlers"
	"github.com/kmagpayo/yieldtrack-backend/internal/auth"
	"github.com/kmagpayo/yieldtrack-backend/internal/config"
	"github.com/kmagpayo/yieldtrack-backend/internal/db"
	"github.com/kmagpayo/yieldtrack-backend/internal/logger"
	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
	"github.com/kmagpayo/yieldtrack-backend/internal/middleware"
	"github.com/kmagpayo/yieldtrack-backend/internal/rates"
	"github.com/kmagpayo/yieldtrack-backend/internal/repository/postgres"
	"github.com/kmagpayo/yieldtrack-backend/internal/services"
	"github.com/kmagpayo/yieldtrack-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(cfg.PropagationWorkers)
	defer wp.Stop()

	propagator := rates.NewPropagator(repos.Accounts)
	registry := rates.NewRegistry(repos.YieldRates, propagator, wp, repos.AuditLogs)
	userSvc := services.NewUserService(repos.Users)
	accountSvc := services.NewAccountService(repos.Accounts, registry)

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	am := middleware.NewAuthMiddleware(tm)
	ah := handlers.NewAuthHandler(tm, userSvc)

	r := api.NewRouter(cfg, am, ah, registry, accountSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
