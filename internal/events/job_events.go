package events

import "time"

const JobLifecycleTopic = "recruitment.job.lifecycle.v1"

const (
	JobCreated = "job_created"
	JobUpdated = "job_updated"
	JobDeleted = "job_deleted"
)

// JobEvent is the payload of every job lifecycle message.
type JobEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	JobID      uint      `json:"job_id"`
	EmployerID *uint     `json:"employer_id,omitempty"`
	CategoryID *uint     `json:"category_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	SkillIDs   []uint    `json:"skill_ids,omitempty"`
	ActorID    uint      `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
