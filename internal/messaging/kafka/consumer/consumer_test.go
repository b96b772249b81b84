package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/bootstrap"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
	rids    []string
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
	a.rids = append(a.rids, contextutil.GetRequestID(ctx))
}

type fakeReader struct {
	messages  []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafkago.Message{}, errors.New("context canceled")
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestHandleJobMessage(t *testing.T) {
	audit := &recordingAudit{}
	value := []byte(`{"event_type":"job_deleted","request_id":"rid-9","job_id":12,"employer_id":7,"occurred_at":"2026-01-02T03:04:05Z"}`)

	err := handleJobMessage(context.Background(), kafkago.Message{Value: value}, audit)

	assert.NoError(t, err)
	assert.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, "JOB_DELETED", entry.Action)
	assert.Equal(t, "job 12 deleted", entry.Message)
	assert.Equal(t, uint(7), entry.Meta["employer_id"])
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), entry.Meta["occurred_at"])
	assert.Equal(t, "rid-9", audit.rids[0])
}

func TestHandleJobMessage_InvalidPayload(t *testing.T) {
	audit := &recordingAudit{}

	err := handleJobMessage(context.Background(), kafkago.Message{Value: []byte("nope")}, audit)

	assert.Error(t, err)
	assert.Empty(t, audit.entries)
}

func TestConsumeJobLifecycle_CommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &fakeReader{
		cancel: cancel,
		messages: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"event_type":"job_created","job_id":1}`)},
			{Offset: 2, Value: []byte(`garbage`)},
		},
	}
	audit := &recordingAudit{}

	ConsumeJobLifecycle(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{1, 2}, reader.committed)
	assert.Len(t, audit.entries, 1)
	assert.Equal(t, "JOB_CREATED", audit.entries[0].Action)
}

type brokerDownReader struct {
	calls int
}

func (r *brokerDownReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.calls++
	return kafkago.Message{}, errors.New("dial tcp: connection refused")
}

func (r *brokerDownReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	return nil
}

func TestConsumeJobLifecycle_BacksOffWhileBrokerIsDown(t *testing.T) {
	prevMin, prevMax := fetchBackoffMin, fetchBackoffMax
	fetchBackoffMin, fetchBackoffMax = 10*time.Millisecond, 40*time.Millisecond
	t.Cleanup(func() { fetchBackoffMin, fetchBackoffMax = prevMin, prevMax })

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	reader := &brokerDownReader{}

	ConsumeJobLifecycle(ctx, reader, &recordingAudit{}, zap.NewNop())

	assert.GreaterOrEqual(t, reader.calls, 2)
	assert.LessOrEqual(t, reader.calls, 10)
}
