package app

import (
	"context"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/bootstrap"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/config"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/events"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka/consumer"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer writes an audit entry for every job lifecycle event until ctx
// is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, events.JobLifecycleTopic, cfg.Kafka.ConsumerGroup)
	defer reader.Close()

	audit := bootstrap.NewStdoutAuditLogger(logger)
	consumer.ConsumeJobLifecycle(ctx, reader, audit, logger)

	logger.Info("consumer shutting down")
	return nil
}
