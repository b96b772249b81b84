package app

import (
	"context"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/config"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka/producer"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays the job outbox to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		connection.PostgresDSN(
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			cfg.Database.SSLMode,
		),
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	logger.Info("outbox worker started", zap.Duration("poll_interval", cfg.Kafka.PollInterval))
	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.PollInterval)

	logger.Info("worker shutting down")
	return nil
}
