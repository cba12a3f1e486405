package dto

import (
	"time"

	"main/model"
)

type TaskResponse struct {
	ID                        string           `json:"id"`
	ProjectID                 string           `json:"project_id"`
	ParentTaskID              *string          `json:"parent_task_id,omitempty"`
	Name                      string           `json:"name"`
	Description               string           `json:"description,omitempty"`
	Status                    model.TaskStatus `json:"status"`
	Priority                  model.Priority   `json:"priority"`
	DueDate                   *time.Time       `json:"due_date,omitempty"`
	DueTime                   string           `json:"due_time,omitempty"`
	Completed                 bool             `json:"completed"`
	CompletedAt               *time.Time       `json:"completed_at,omitempty"`
	DependencyTaskIDs         []string         `json:"dependency_task_ids,omitempty"`
	KanbanColumn              string           `json:"kanban_column,omitempty"`
	SortOrder                 int              `json:"sort_order"`
	EstimatedDuration         int              `json:"estimated_duration,omitempty"`
	SubTaskCompletionRequired bool             `json:"sub_task_completion_required"`
	CreatedAt                 time.Time        `json:"created_at"`
	UpdatedAt                 time.Time        `json:"updated_at"`
}

func ToTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:                        task.TaskID,
		ProjectID:                 task.ProjectID,
		ParentTaskID:              task.ParentTaskID,
		Name:                      task.Name,
		Description:               task.Description,
		Status:                    task.Status,
		Priority:                  task.Priority,
		DueTime:                   task.DueTime,
		Completed:                 task.Completed,
		CompletedAt:               task.CompletedAt,
		DependencyTaskIDs:         task.DependencyTaskIDs,
		KanbanColumn:              task.KanbanColumn,
		SortOrder:                 task.SortOrder,
		EstimatedDuration:         task.EstimatedDuration,
		SubTaskCompletionRequired: task.RequiresSubTaskCompletion(),
		CreatedAt:                 task.CreatedAt,
		UpdatedAt:                 task.UpdatedAt,
	}

	if !task.DueDate.IsZero() {
		due := task.DueDate
		response.DueDate = &due
	}

	return response
}

func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
