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
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/app"
	"github.com/justsurfingit/job-canvas/internal/config"
	"github.com/justsurfingit/job-canvas/internal/handlers"
	"github.com/justsurfingit/job-canvas/internal/observability"
)

func main() {
	// 1. Load environment and configuration
	config.LoadDotEnv()
	cfg, err := config.Load(viper.New())
	if err != nil {
		observability.GetLogger().Fatal("Configuration error", zap.Error(err))
	}

	// 2. Logger
	logger := observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Store, completer and services
	a, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// 4. Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(
		handlers.NewDiagramHandler(a.Diagrams, logger.Named("http")),
		handlers.NewJobHandler(a.Jobs),
		logger.Named("http"),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
