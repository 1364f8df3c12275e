package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/centrifx/fxcore/internal/adapters/feed"
	"github.com/centrifx/fxcore/internal/adapters/memory"
	"github.com/centrifx/fxcore/internal/core/services"
	"github.com/centrifx/fxcore/internal/platform/logging"
	"github.com/centrifx/fxcore/internal/scheduler"
	"github.com/centrifx/fxcore/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := memory.NewRepositoryProvider(cfg.HistoryRetentionDays)

	var fetcher *feed.Client
	if cfg.FeedURL != "" {
		fetcher = feed.NewClient(cfg.FeedURL, cfg.FeedTimeout, logger)
	}

	var container *services.ServicesContainer
	if fetcher != nil {
		container = services.NewServicesContainer(repos, fetcher, cfg)
	} else {
		container = services.NewServicesContainer(repos, nil, cfg)
	}

	ctx := logging.WithLogger(context.Background(), logger)
	if err := container.Registry.SeedDefaultCurrencies(ctx); err != nil {
		logger.Error("Failed to seed currency catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := container.Registry.SetBaseCurrency(ctx, cfg.AnchorCurrency); err != nil {
		logger.Error("Failed to set anchor currency", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency engine initialized", slog.String("anchor", cfg.AnchorCurrency))

	sched := scheduler.New(logger)
	if container.Feed != nil {
		job := scheduler.NewRateRefreshJob(container.Feed, cfg.FeedTimeout)
		if err := sched.AddJob(cfg.FeedSchedule, job); err != nil {
			logger.Error("Failed to register rate refresh job", slog.String("error", err.Error()))
			os.Exit(1)
		}
		// Prime the store so the engine does not wait a full cycle for
		// its first rates.
		if err := sched.RunNow(job); err != nil {
			logger.Warn("Initial rate refresh failed, serving without feed rates", slog.String("error", err.Error()))
		}
	} else {
		logger.Warn("No FEED_URL configured; rates must be pushed manually")
	}
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")
}
