package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tversen/venue-booking-backend/internal/config"
	"github.com/tversen/venue-booking-backend/internal/logging"
	"github.com/tversen/venue-booking-backend/internal/notify"
)

// The worker drains the notification topic and hands each message to the
// email sender. It is a separate binary so delivery retries and restarts
// never touch the API server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if len(cfg.KafkaBrokers) == 0 {
		logger.Fatal("KAFKA_BROKERS is required for the notification worker")
	}

	consumer := notify.NewConsumer(cfg.KafkaBrokers, "notification-worker", cfg.KafkaTopic)
	defer func() { _ = consumer.Close() }()

	sender := notify.NewEmailSender(cfg.NotifyFromAddress, logger)

	logger.Info("notification worker started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
	)

	err = consumer.Consume(ctx, func(ctx context.Context, msg notify.Message) error {
		if err := sender.Send(ctx, msg); err != nil {
			// Delivery failures are logged and skipped; a poison message must
			// not wedge the whole queue.
			logger.Error("notification delivery failed",
				zap.String("reference", msg.Reference),
				zap.Error(err),
			)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("consumer stopped", zap.Error(err))
	}

	logger.Info("notification worker exited gracefully")
}
