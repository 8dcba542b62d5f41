package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"drportal/internal/notify"
	"drportal/pkg/config"
	"drportal/pkg/kafka"
	kafka_config "drportal/pkg/kafka/config"
	kafka_middleware "drportal/pkg/kafka/middleware"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting notification worker")

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	sender := initSender(cfg)
	worker := notify.NewWorker(sender, cfg.Log)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.NotifyTopic,
		cfg.NotifyGroupID,
		cfg.NotifyDLQTopic,
		worker.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(kafka_middleware.MetricsConsumerMiddleware())

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	cfg.Log.Info("Consuming notifications",
		"topic", cfg.NotifyTopic,
		"group", cfg.NotifyGroupID,
		"dlq", cfg.NotifyDLQTopic,
	)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}

	stats := kafka_middleware.GetMetrics().Snapshot()
	cfg.Log.Info("Notification worker stopped",
		"consumed", stats.Consumed,
		"failed", stats.ConsumedFailed,
		"avg_duration", stats.AvgConsumeDuration.String(),
	)
}

func initSender(cfg *config.Config) notify.EmailSender {
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailSender,
		FromName:  cfg.EmailSenderName,
	}, cfg.Log)
	if sender == nil {
		cfg.Log.Warn("No SendGrid API key configured, emails will be logged only")
		return notify.NewStubEmailSender(cfg.Log)
	}
	return sender
}
