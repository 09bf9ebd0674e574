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

	"vanbook/internal/app/session"
	"vanbook/internal/domain/pricing"
	"vanbook/internal/infra/bookingapi"
	"vanbook/internal/infra/broker/kafka"
	"vanbook/internal/infra/catalog"
	"vanbook/internal/infra/config"
	ginserver "vanbook/internal/infra/http/gin"
	"vanbook/internal/infra/obs"
	"vanbook/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	catalogClient := &catalog.Client{BaseURL: cfg.CatalogBaseURL, HTTP: httpClient, Logger: logger}
	bookingClient := &bookingapi.Client{Endpoint: cfg.BookingAPIURL, HTTP: httpClient, Logger: logger}

	var events session.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Warn("kafka unavailable, events disabled", "error", err)
		} else {
			defer producer.Close()
			events = producer
		}
	}

	coordinator := &session.Coordinator{
		Submitter:    bookingClient,
		Events:       events,
		ContactPhone: cfg.ContactWhatsApp,
		TopicPrefix:  cfg.KafkaTopicPrefix,
		Logger:       logger,
	}

	store := memory.NewSessionStore(cfg.SessionTTL)
	go sweepSessions(ctx, store, cfg.SweepInterval, logger)

	handlers := ginserver.Handlers{
		Session: ginserver.SessionHandler{
			Catalog:     catalogClient,
			Store:       store,
			Coordinator: coordinator,
			Calculator:  pricing.NewCalculator(cfg.MinNights),
			Logger:      logger,
		},
	}
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "catalog", cfg.CatalogBaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func sweepSessions(ctx context.Context, store *memory.SessionStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := store.Sweep(now); removed > 0 {
				logger.Debug("expired sessions swept", "count", removed)
			}
		}
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
