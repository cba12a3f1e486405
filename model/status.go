package model

import "strings"

type TaskStatus string
type ProjectStatus string
type Priority string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"

	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"

	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// canonical converts any historical casing found in the data store
// ("Not Started", "IN_PROGRESS", "in progress") to snake_case. Writes always
// store canonical form; this is only applied on the read path.
func canonical(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// NormalizeTaskStatus maps a stored status string to its canonical enum
// value. Unknown or empty statuses are treated as todo.
func NormalizeTaskStatus(s string) TaskStatus {
	switch TaskStatus(canonical(s)) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted:
		return TaskStatus(canonical(s))
	default:
		return TaskStatusTodo
	}
}

// NormalizeProjectStatus maps a stored status string to its canonical enum
// value. Unknown or empty statuses are treated as not_started.
func NormalizeProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(canonical(s)) {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return ProjectStatus(canonical(s))
	default:
		return ProjectNotStarted
	}
}

// NormalizePriority maps a stored priority string to its canonical enum
// value. Unknown or empty priorities are treated as medium.
func NormalizePriority(s string) Priority {
	switch Priority(canonical(s)) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(canonical(s))
	default:
		return PriorityMedium
	}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted:
		return true
	}
	return false
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ActiveTaskStatuses are the statuses a task may hold while incomplete.
// Tasks with a missing status are treated as todo.
var ActiveTaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusReview}
