package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/bootstrap"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/events"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Fetch failures back off exponentially between these bounds.
var (
	fetchBackoffMin = 500 * time.Millisecond
	fetchBackoffMax = 30 * time.Second
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeJobLifecycle turns job lifecycle events into audit entries until ctx
// is cancelled. Offsets are committed only after the entry is written.
func ConsumeJobLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.job_lifecycle")
	log.Info("job lifecycle consumer started")

	backoff := fetchBackoffMin
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("job lifecycle consumer stopped")
				return
			}
			log.Error("fetch job lifecycle message failed",
				zap.Duration("retry_in", backoff),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				log.Info("job lifecycle consumer stopped")
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, fetchBackoffMax)
			continue
		}
		backoff = fetchBackoffMin

		if err := handleJobMessage(ctx, msg, audit); err != nil {
			// Undecodable messages are skipped so they cannot block the partition.
			log.Error("decode job lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit job lifecycle message failed", zap.Error(err))
		}
	}
}

func handleJobMessage(ctx context.Context, msg kafkago.Message, audit bootstrap.AuditLogger) error {
	var event events.JobEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return err
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	meta := map[string]any{
		"job_id":      event.JobID,
		"occurred_at": event.OccurredAt,
	}
	if event.EmployerID != nil {
		meta["employer_id"] = *event.EmployerID
	}
	if event.CategoryID != nil {
		meta["category_id"] = *event.CategoryID
	}
	if event.ActorID != 0 {
		meta["actor_id"] = event.ActorID
	}
	if len(event.SkillIDs) > 0 {
		meta["skill_ids"] = event.SkillIDs
	}

	audit.Log(ctx, bootstrap.AuditLog{
		Action:  strings.ToUpper(event.EventType),
		Message: fmt.Sprintf("job %d %s", event.JobID, strings.TrimPrefix(event.EventType, "job_")),
		Meta:    meta,
	})
	return nil
}
