package dto

import (
	"time"

	"main/model"
)

// ProjectResponse carries the project row plus roll-ups recomputed from live
// task rows on every read.
type ProjectResponse struct {
	ID                   string              `json:"id"`
	AreaID               *string             `json:"area_id,omitempty"`
	Name                 string              `json:"name"`
	Description          string              `json:"description,omitempty"`
	Status               model.ProjectStatus `json:"status"`
	Priority             model.Priority      `json:"priority"`
	Importance           int                 `json:"importance"`
	Deadline             *time.Time          `json:"deadline,omitempty"`
	Archived             bool                `json:"archived"`
	TaskCount            int                 `json:"task_count"`
	CompletedTaskCount   int                 `json:"completed_task_count"`
	CompletionPercentage float64             `json:"completion_percentage"`
	Tasks                []TaskResponse      `json:"tasks,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

func ToProjectResponse(project *model.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ProjectID,
		AreaID:      project.AreaID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Priority:    project.Priority,
		Importance:  project.Importance,
		Archived:    project.Archived,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	if !project.Deadline.IsZero() {
		deadline := project.Deadline
		response.Deadline = &deadline
	}

	return response
}
