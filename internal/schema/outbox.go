package schema

import "time"

// OutboxEvent is a domain event persisted in the same transaction as the
// change it describes, and later relayed to Kafka by the worker.
type OutboxEvent struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"column:request_id;size:64"`
	AggregateType string     `gorm:"column:aggregate_type;size:50;not null"`
	AggregateID   string     `gorm:"column:aggregate_id;size:64;not null"`
	EventType     string     `gorm:"column:event_type;size:100;not null"`
	Topic         string     `gorm:"size:255;not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"size:20;not null;index"`
	RetryCount    int        `gorm:"column:retry_count;not null"`
	ErrorMessage  *string    `gorm:"column:error_message;size:500"`
	NextRetryAt   *time.Time `gorm:"column:next_retry_at"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (OutboxEvent) TableName() string { return "outbox_events" }
