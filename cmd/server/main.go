package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"FinKeeper/internal/config"
	"FinKeeper/internal/handlers"
	"FinKeeper/internal/middleware"
	"FinKeeper/internal/repo"
	"FinKeeper/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if err := repo.Migrate(gormDB); err != nil {
		sugar.Fatalw("failed to migrate database", "error", err)
	}

	stores := repo.NewStores(gormDB)
	services := service.NewServices(stores, sugar, service.Options{
		UpcomingWindowDays: cfg.UpcomingWindowDays,
		TrialWindowDays:    cfg.TrialWindowDays,
		OwnerUserID:        cfg.OwnerUserID,
	})

	// фоновый проход движка уведомлений
	go func() {
		ticker := time.NewTicker(cfg.NotifyInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emitted, err := services.Notify.Run(ctx)
				if err != nil {
					sugar.Errorw("notification run failed", "error", err)
					continue
				}
				if emitted > 0 {
					sugar.Infow("notifications emitted", "count", emitted)
				}
			}
		}
	}()

	h := handlers.NewHandler(services, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"NotifyInterval", cfg.NotifyInterval,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("server shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		sugar.Fatalw("Server failed", "error", err)
	}
}
