package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"listingWatcherBot/internal/application"
	"listingWatcherBot/internal/domain/repository"
	"listingWatcherBot/internal/infrastructure/html"
	"listingWatcherBot/internal/infrastructure/logging"
	"listingWatcherBot/internal/infrastructure/metrics"
	"listingWatcherBot/internal/infrastructure/rss"
	"listingWatcherBot/internal/infrastructure/scraper"
	"listingWatcherBot/internal/infrastructure/storage"
	"listingWatcherBot/internal/infrastructure/telegram"
	"listingWatcherBot/internal/interfaces/config"
)

func main() {
	fmt.Println("Starting listing watcher...")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier, err := telegram.NewNotifier(telegram.Config{
		Token:          cfg.TelegramToken,
		ChatID:         cfg.ChatID,
		DisablePreview: cfg.DisablePreview,
		MaxPermits:     cfg.MaxPermits,
		RefillInterval: cfg.GetRefillInterval(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telegram notifier")
	}

	seenRepo, err := storage.Open(cfg.GetStorageConfig())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open seen store")
	}
	if closer, ok := seenRepo.(io.Closer); ok {
		defer closer.Close()
	}

	client := scraper.NewClient(cfg.GetHTTPTimeout(), cfg.UserAgent)
	sources := []repository.ListingRepository{
		html.NewSearchRepository(client, html.Config{
			SearchURL: cfg.SearchURL,
			Keyword:   cfg.Keyword,
			Limit:     cfg.HTMLLimit,
		}, log),
		rss.NewFeedRepository(client, rss.Config{
			SearchURL: cfg.SearchURL,
			Keyword:   cfg.Keyword,
		}, log),
	}

	recorder := metrics.NewPrometheusRecorder()
	metrics.StartServer(ctx, cfg.MetricsAddr, log)

	service := application.NewWatchService(
		sources,
		seenRepo,
		notifier,
		application.WatchConfig{
			Keyword:           cfg.Keyword,
			Currency:          cfg.CurrencySymbol,
			SeenMax:           cfg.SeenMax,
			NotifyFetchErrors: cfg.NotifyFetchErrors,
		},
		recorder,
		log,
	)

	scheduler := application.NewScheduler(service, application.SchedulerConfig{
		Interval: cfg.GetFetchInterval(),
		Jitter:   cfg.GetFetchJitter(),
	}, recorder, log)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("shutdown signal received")
		cancel()
	}()

	log.Info().
		Str("keyword", cfg.Keyword).
		Str("store", cfg.StoreDriver).
		Dur("interval", cfg.GetFetchInterval()).
		Dur("jitter", cfg.GetFetchJitter()).
		Msg("watching search results")

	scheduler.Run(ctx)
	log.Info().Msg("shutting down")
}
