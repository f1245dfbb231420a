// Command bankd serves the bank over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/config"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/handlers"
	"github.com/benx421/simple-banking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, logCloser, err := cfg.Logger.NewLogger()
	if err != nil {
		slog.Error("failed to create logger", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting bank api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"db_driver", cfg.Database.Driver,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	generator, err := card.NewGenerator(cfg.Card.IIN, nil)
	if err != nil {
		logger.Error("failed to create card generator", "error", err)
		os.Exit(1)
	}

	idempotencyRepo := repository.NewIdempotencyRepository(cfg.Server.IdempotencyTTL)

	router, err := handlers.NewRouter(database, generator, idempotencyRepo, cfg, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go purgeIdempotencyKeys(janitorCtx, idempotencyRepo, cfg.Server.IdempotencyTTL, logger)

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// purgeIdempotencyKeys drops replayable responses once they outlive ttl.
func purgeIdempotencyKeys(ctx context.Context, repo repository.IdempotencyRepository, ttl time.Duration, logger *slog.Logger) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := repo.DeleteOlderThan(ctx, now.Add(-ttl))
			if err != nil {
				logger.Error("failed to purge idempotency keys", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Debug("purged idempotency keys", "count", deleted)
			}
		}
	}
}
