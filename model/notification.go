package model

import "time"

type NotificationType string

const (
	NotificationTaskUnblocked NotificationType = "task_unblocked"
	NotificationTaskDue       NotificationType = "task_due"
	NotificationAchievement   NotificationType = "achievement"
)

type Notification struct {
	NotificationID string           `bson:"_id,omitempty" json:"id"`
	UserID         string           `bson:"user_id" json:"user_id"`
	Type           NotificationType `bson:"type" json:"type"`
	Title          string           `bson:"title" json:"title"`
	Message        string           `bson:"message,omitempty" json:"message"`
	TaskID         string           `bson:"task_id,omitempty" json:"task_id,omitempty"`
	ProjectID      string           `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Read           bool             `bson:"read" json:"read"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
}

// Event is the outbox payload published on the primary write path and
// consumed by the dispatcher, which materializes it as a Notification row.
type Event struct {
	EventID   string           `json:"event_id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	TaskID    string           `json:"task_id,omitempty"`
	ProjectID string           `json:"project_id,omitempty"`
	EmittedAt time.Time        `json:"emitted_at"`
	Attempts  int              `json:"attempts"`
}
