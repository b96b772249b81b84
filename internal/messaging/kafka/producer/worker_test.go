package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka"
	kafkaMock "github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failOn   map[string]error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err, ok := w.failOn[string(m.Key)]; ok {
			return err
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: map[string]error{"2": errors.New("broker down")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "a", AggregateID: "1", EventType: "job_created", Topic: "t", Payload: []byte(`{}`), RequestID: "rid"},
			{ID: "b", AggregateID: "2", EventType: "job_deleted", Topic: "t", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "a").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "b", "broker down").Return(nil)

		err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, "t", msg.Topic)
		assert.Equal(t, []byte("1"), msg.Key)
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte("job_created")})
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("rid")})
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, nil)

		assert.NoError(t, processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop()))
	})

	t.Run("list failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		assert.Error(t, processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop()))
	})
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 0)
		close(done)
	}()
	<-done
}
