package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tversen/venue-booking-backend/internal/api"
	"github.com/tversen/venue-booking-backend/internal/auth"
	"github.com/tversen/venue-booking-backend/internal/booking"
	"github.com/tversen/venue-booking-backend/internal/config"
	"github.com/tversen/venue-booking-backend/internal/db"
	"github.com/tversen/venue-booking-backend/internal/logging"
	"github.com/tversen/venue-booking-backend/internal/notify"
	"github.com/tversen/venue-booking-backend/internal/resource"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Notification channel: Kafka when brokers are configured, log otherwise.
	var notifier booking.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		producer := notify.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() { _ = producer.Close() }()
		notifier = notify.NewKafkaNotifier(producer)
		logger.Info("notifications via kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	} else {
		notifier = notify.NewLogNotifier(logger)
		logger.Info("notifications via log only")
	}

	// Resource module
	resourceRepo := resource.NewPgxRepository(pool)
	resourceService := resource.NewService(resourceRepo)

	// Booking module
	bookingStore := booking.NewPgxStore(pool)
	bookingService := booking.NewService(bookingStore, resourceService, notifier, logger)

	// Gin router
	router := api.NewRouter(cfg, resourceService, bookingService, jwtManager)

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	// Run server in separate goroutine
	go func() {
		logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
