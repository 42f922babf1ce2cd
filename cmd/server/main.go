package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmedina/playtrack/internal/api"
	"github.com/lmedina/playtrack/internal/config"
	"github.com/lmedina/playtrack/internal/db"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/progress"
	"github.com/lmedina/playtrack/internal/repository/sqlite"
	"github.com/lmedina/playtrack/internal/services"
	"github.com/lmedina/playtrack/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Playtrack Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sink_worker_count=%d", cfg.SinkWorkers)
	log.Debug("sink_queue_size=%d", cfg.SinkQueueSize)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	sinkPool := worker.NewPool(cfg.SinkWorkers, cfg.SinkQueueSize)

	progressRepo := sqlite.NewProgressRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	store := progress.NewStore(progressRepo)
	progressService := services.NewProgressService(store)
	statsService := services.NewStatsService(statsRepo)

	srv := &api.Server{
		Progress: progressService,
		Stats:    statsService,
		SinkPool: sinkPool,
		DB:       database,
	}

	ctx, cancel := context.WithCancel(context.Background())
	sinkPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping sink pool")
	sinkPool.Stop()

	log.Info("===========================================")
	log.Info("Playtrack Server Stopped")
	log.Info("===========================================")
}
