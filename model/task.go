package model

import "time"

// Task belongs to exactly one project and may nest under a parent task.
// Completed and Status are kept consistent bidirectionally: setting either
// implies the other plus CompletedAt.
type Task struct {
	TaskID                    string     `bson:"_id,omitempty" json:"id"`
	UserID                    string     `bson:"user_id" json:"user_id"`
	ProjectID                 string     `bson:"project_id" json:"project_id"`
	ParentTaskID              *string    `bson:"parent_task_id,omitempty" json:"parent_task_id,omitempty"`
	Name                      string     `bson:"name" json:"name" binding:"required"`
	Description               string     `bson:"description,omitempty" json:"description"`
	Status                    TaskStatus `bson:"status" json:"status"`
	Priority                  Priority   `bson:"priority" json:"priority"`
	DueDate                   time.Time  `bson:"due_date,omitempty" json:"due_date,omitempty"`
	DueTime                   string     `bson:"due_time,omitempty" json:"due_time,omitempty"` // "HH:MM"
	Completed                 bool       `bson:"completed" json:"completed"`
	CompletedAt               *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	DependencyTaskIDs         []string   `bson:"dependency_task_ids,omitempty" json:"dependency_task_ids,omitempty"`
	KanbanColumn              string     `bson:"kanban_column,omitempty" json:"kanban_column,omitempty"`
	SortOrder                 int        `bson:"sort_order" json:"sort_order"`
	EstimatedDuration         int        `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"` // minutes
	SubTaskCompletionRequired *bool      `bson:"sub_task_completion_required,omitempty" json:"sub_task_completion_required,omitempty"`
	CreatedAt                 time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt                 time.Time  `bson:"updated_at" json:"updated_at"`
}

// RequiresSubTaskCompletion reports whether completing this task is gated on
// its sub-tasks. A pointer field so update payloads can omit it without
// clearing the stored value; unset means not required.
func (t *Task) RequiresSubTaskCompletion() bool {
	return t.SubTaskCompletionRequired != nil && *t.SubTaskCompletionRequired
}

// Active reports whether the task should be considered for prioritization:
// incomplete and in an active status (missing status counts as todo).
func (t *Task) Active() bool {
	if t.Completed {
		return false
	}
	switch t.Status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, "":
		return true
	}
	return false
}
